package errors

import (
	"net/http"
	"testing"

	"botauth/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrInvalidHashFormat.WrapMessage("check superuser password")

	assert.True(t, errors.Is(err, ErrInvalidHashFormat))
	assert.False(t, errors.Is(err, ErrPasswordHashFailed))
	assert.Contains(t, err.Error(), "check superuser password")
}

func TestBaseError_WithDetailsMatchesOriginal(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("user.id is required")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.Equal(t, "user.id is required", detailed.Details())
	assert.Equal(t, http.StatusBadRequest, detailed.HTTPCode())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to update user")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, "failed to update user", appErr.Details())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
