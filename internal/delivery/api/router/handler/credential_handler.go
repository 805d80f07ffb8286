package handler

import (
	"log/slog"
	"net/http"
	"time"

	"botauth/internal/delivery/api/response"
	deliverycontext "botauth/internal/delivery/context"
	"botauth/internal/domain/entity"
	domainerrors "botauth/internal/domain/errors"
	"botauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CredentialHandlerParams holds dependencies for CredentialHandler, injected by Fx.
type CredentialHandlerParams struct {
	fx.In

	CredentialUC usecase.CredentialUsecase
	Logger       *slog.Logger
}

// CredentialHandler exposes the superuser credential operations to the bot process.
type CredentialHandler struct {
	credentialUC usecase.CredentialUsecase
	logger       *slog.Logger
}

// NewCredentialHandler is the constructor for CredentialHandler
func NewCredentialHandler(params CredentialHandlerParams) *CredentialHandler {
	return &CredentialHandler{
		credentialUC: params.CredentialUC,
		logger:       params.Logger,
	}
}

// UserRequest identifies the chat user a command is issued for.
type UserRequest struct {
	User entity.ExternalUser `json:"user"`
}

// CheckPasswordRequest represents the request body for checking the superuser password
type CheckPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents the request body for a superuser login attempt
type LoginRequest struct {
	User     entity.ExternalUser `json:"user"`
	Password string              `json:"password" validate:"required"`
}

// ChangePasswordRequest represents the request body for replacing the superuser password
type ChangePasswordRequest struct {
	User        entity.ExternalUser `json:"user"`
	NewPassword string              `json:"newPassword" validate:"required,bcryptmax"`
}

// UserResponse is the public view of a stored chat user.
type UserResponse struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	IsSuperuser bool      `json:"isSuperuser"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CheckPasswordResponse reports the result of a password check.
type CheckPasswordResponse struct {
	Valid bool `json:"valid"`
}

// LoginResponse reports the user's superuser flag after a login attempt.
type LoginResponse struct {
	IsSuperuser bool `json:"isSuperuser"`
}

// ChangePasswordResponse reports whether the password was replaced.
type ChangePasswordResponse struct {
	Changed bool `json:"changed"`
}

// GetOrCreateUser handles registering a chat user on first contact.
func (h *CredentialHandler) GetOrCreateUser(c echo.Context) error {
	var req UserRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	user, err := h.credentialUC.GetOrCreateUser(c.Request().Context(), req.User)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, UserResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		IsSuperuser: user.IsSuperuser,
		CreatedAt:   user.CreatedAt,
	})
}

// CheckPassword handles verifying a candidate superuser password without side effects.
func (h *CredentialHandler) CheckPassword(c echo.Context) error {
	var req CheckPasswordRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	valid, err := h.credentialUC.CheckSuperuserPassword(c.Request().Context(), req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, CheckPasswordResponse{Valid: valid})
}

// Login handles a chat user presenting the superuser password.
// A wrong password is not an error; it clears the user's superuser flag.
func (h *CredentialHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	granted, err := h.credentialUC.UpdateToSuperuserIfPasswordCorrect(c.Request().Context(), req.Password, req.User)
	if err != nil {
		return errors.WithStack(err)
	}

	h.log(c).Info("Superuser login attempt",
		slog.Int64("user_id", req.User.ID),
		slog.Bool("granted", granted),
	)

	return response.Success(c, http.StatusOK, LoginResponse{IsSuperuser: granted})
}

// ChangePassword handles a superuser replacing the shared password.
func (h *CredentialHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	result, err := h.credentialUC.ChangeSuperuserPassword(c.Request().Context(), req.User, req.NewPassword)
	if err != nil {
		return errors.WithStack(err)
	}
	if result == "" {
		return domainerrors.ErrNotSuperuser
	}

	h.log(c).Info("Superuser password changed", slog.Int64("user_id", req.User.ID))

	return response.Success(c, http.StatusOK, ChangePasswordResponse{Changed: true})
}

// log returns the request logger, which carries the request id and the authenticated caller.
func (h *CredentialHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}

// bind decodes and validates the request body. Failures are returned for the error middleware to render.
func (h *CredentialHandler) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
