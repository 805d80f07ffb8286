package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "botauth/internal/delivery/context"
	"botauth/internal/domain/service"
	mockSvc "botauth/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/v1/superuser/check", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestAuthenticate_RejectsBeforeValidation(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantCode string
	}{
		{name: "missing header", header: "", wantCode: "MISSING_TOKEN"},
		{name: "basic scheme", header: "Basic abc", wantCode: "INVALID_TOKEN_FORMAT"},
		{name: "empty bearer", header: "Bearer ", wantCode: "INVALID_TOKEN_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No Validate expectation: the token service must not be reached.
			tokens := mockSvc.NewMockCallerTokenService(t)
			m := NewAuthMiddleware(tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))
			c, rec := newAuthContext(tt.header)

			called := false
			err := m.Authenticate(func(echo.Context) error {
				called = true

				return nil
			})(c)

			require.NoError(t, err)
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokens := mockSvc.NewMockCallerTokenService(t)
	tokens.EXPECT().Validate("bad").Return(nil, errors.New("token is expired"))

	m := NewAuthMiddleware(tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newAuthContext("Bearer bad")

	err := m.Authenticate(func(echo.Context) error {
		t.Fatal("next must not run")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthenticate_ScopesLoggerToCaller(t *testing.T) {
	tokens := mockSvc.NewMockCallerTokenService(t)
	tokens.EXPECT().Validate("good").Return(&service.CallerClaims{Subject: "telegram-bot"}, nil)

	var logs bytes.Buffer
	m := NewAuthMiddleware(tokens, slog.New(slog.NewTextHandler(&logs, nil)))
	c, _ := newAuthContext("Bearer good")

	err := m.Authenticate(func(c echo.Context) error {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("handled")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "caller=telegram-bot")
}
