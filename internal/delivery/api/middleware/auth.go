package middleware

import (
	"log/slog"
	"strings"

	"botauth/internal/delivery/api/response"
	deliverycontext "botauth/internal/delivery/context"
	"botauth/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates the bot process calling the command API.
type AuthMiddleware struct {
	tokens service.CallerTokenService
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.CallerTokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

// Authenticate requires a valid caller token in the Authorization header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokens.Validate(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Rejected caller token", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		reqLogger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			With(slog.String("caller", claims.Subject))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(c.Request().Context(), reqLogger)))

		return next(c)
	}
}
