// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"botauth/internal/delivery/api/middleware"
	"botauth/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CredentialHandler *handler.CredentialHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	credentialHandler *handler.CredentialHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		credentialHandler: params.CredentialHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Every command requires a caller token issued to the bot process.
	v1 := e.Group("/v1")
	v1.Use(r.authMiddleware.Authenticate)
	{
		v1.POST("/users", r.credentialHandler.GetOrCreateUser)
	}

	superuserGroup := v1.Group("/superuser")
	{
		superuserGroup.POST("/check", r.credentialHandler.CheckPassword)
		superuserGroup.POST("/login", r.credentialHandler.Login)
		superuserGroup.PUT("/password", r.credentialHandler.ChangePassword)
	}
}
