package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"botauth/config"
	apimiddleware "botauth/internal/delivery/api/middleware"
	"botauth/internal/delivery/api/response"
	"botauth/internal/delivery/api/router"
	"botauth/internal/delivery/api/router/handler"
	deliverycontext "botauth/internal/delivery/context"
	"botauth/internal/domain/entity"
	domainerrors "botauth/internal/domain/errors"
	"botauth/internal/infra/auth"
	mockUC "botauth/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixtures struct {
	echo  *echo.Echo
	uc    *mockUC.MockCredentialUsecase
	token string
}

func newAPIFixtures(t *testing.T) apiFixtures {
	t.Helper()

	return newAPIFixturesWithLog(t, io.Discard)
}

func newAPIFixturesWithLog(t *testing.T, logOut io.Writer) apiFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.CallerSecret = "test-caller-secret"
	logger := slog.New(slog.NewTextHandler(logOut, nil))

	tokens, err := auth.NewCallerTokenService(cfg)
	require.NoError(t, err)
	token, err := tokens.Issue("telegram-bot", time.Hour)
	require.NoError(t, err)

	uc := mockUC.NewMockCredentialUsecase(t)
	e := NewEcho(cfg, logger, router.RouterParams{
		CredentialHandler: handler.NewCredentialHandler(handler.CredentialHandlerParams{
			CredentialUC: uc,
			Logger:       logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens, logger),
	})

	return apiFixtures{echo: e, uc: uc, token: token}
}

func (fx apiFixtures) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T                  `json:"data"`
		Meta *response.MetaInfo `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Meta)
	assert.NotEmpty(t, envelope.Meta.RequestID)

	return envelope.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var envelope response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)

	return envelope.Error
}

func TestAPI_HealthNeedsNoToken(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, map[string]string{"status": "ok"}, decodeData[map[string]string](t, rec))
}

func TestAPI_RejectsMissingOrBadToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		wantCode string
	}{
		{name: "missing", token: "", wantCode: "MISSING_TOKEN"},
		{name: "garbage", token: "not-a-jwt", wantCode: "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAPIFixtures(t)

			rec := fx.do(http.MethodPost, "/v1/superuser/check", `{"password":"x"}`, tt.token)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestAPI_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	fx := newAPIFixtures(t)

	other := &config.Config{}
	other.HTTP.CallerSecret = "someone-else"
	tokens, err := auth.NewCallerTokenService(other)
	require.NoError(t, err)
	forged, err := tokens.Issue("intruder", time.Hour)
	require.NoError(t, err)

	rec := fx.do(http.MethodPost, "/v1/superuser/check", `{"password":"x"}`, forged)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_GetOrCreateUser(t *testing.T) {
	fx := newAPIFixtures(t)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	fx.uc.EXPECT().
		GetOrCreateUser(mock.Anything, entity.ExternalUser{ID: 42, FirstName: "Ann"}).
		Return(&entity.User{ID: 42, FirstName: "Ann", CreatedAt: created}, nil)

	rec := fx.do(http.MethodPost, "/v1/users", `{"user":{"id":42,"firstName":"Ann"}}`, fx.token)

	require.Equal(t, http.StatusOK, rec.Code)
	user := decodeData[handler.UserResponse](t, rec)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "Ann", user.FirstName)
	assert.False(t, user.IsSuperuser)
	assert.True(t, created.Equal(user.CreatedAt))
}

func TestAPI_GetOrCreateUser_ValidationFailure(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodPost, "/v1/users", `{"user":{"firstName":"NoID"}}`, fx.token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
	assert.Contains(t, rec.Body.String(), `"field":"user.id"`)
	assert.Contains(t, rec.Body.String(), `"rule":"required"`)
}

func TestAPI_MalformedBody(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodPost, "/v1/superuser/check", `{"password":`, fx.token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestAPI_CheckPassword(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.uc.EXPECT().CheckSuperuserPassword(mock.Anything, "s3cret").Return(true, nil)

	rec := fx.do(http.MethodPost, "/v1/superuser/check", `{"password":"s3cret"}`, fx.token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[handler.CheckPasswordResponse](t, rec).Valid)
}

func TestAPI_CheckPassword_InvalidHashIsServerError(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.uc.EXPECT().
		CheckSuperuserPassword(mock.Anything, "s3cret").
		Return(false, errors.Wrap(domainerrors.ErrInvalidHashFormat.WithDetails("hash too short"), "failed to verify"))

	rec := fx.do(http.MethodPost, "/v1/superuser/check", `{"password":"s3cret"}`, fx.token)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "INVALID_HASH_FORMAT", errInfo.Code)
	assert.Nil(t, errInfo.Details, "5xx responses must not leak details")
}

func TestAPI_Login(t *testing.T) {
	tests := []struct {
		name    string
		granted bool
	}{
		{name: "correct password", granted: true},
		{name: "wrong password", granted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAPIFixtures(t)

			fx.uc.EXPECT().
				UpdateToSuperuserIfPasswordCorrect(mock.Anything, "pw", entity.ExternalUser{ID: 7, FirstName: "Tom"}).
				Return(tt.granted, nil)

			rec := fx.do(http.MethodPost, "/v1/superuser/login", `{"user":{"id":7,"firstName":"Tom"},"password":"pw"}`, fx.token)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.granted, decodeData[handler.LoginResponse](t, rec).IsSuperuser)
		})
	}
}

func TestAPI_ChangePassword(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.uc.EXPECT().
		ChangeSuperuserPassword(mock.Anything, entity.ExternalUser{ID: 7}, "1234").
		Return("1234", nil)

	rec := fx.do(http.MethodPut, "/v1/superuser/password", `{"user":{"id":7},"newPassword":"1234"}`, fx.token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[handler.ChangePasswordResponse](t, rec).Changed)
	assert.NotContains(t, rec.Body.String(), "1234")
}

func TestAPI_ChangePassword_LengthCountsBytes(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantCode int
	}{
		// 40 runes, 80 bytes.
		{name: "multibyte over limit", password: strings.Repeat("é", 40), wantCode: http.StatusBadRequest},
		{name: "multibyte at limit", password: strings.Repeat("é", 36), wantCode: http.StatusOK},
		{name: "ascii over limit", password: strings.Repeat("a", 73), wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAPIFixtures(t)
			if tt.wantCode == http.StatusOK {
				fx.uc.EXPECT().
					ChangeSuperuserPassword(mock.Anything, entity.ExternalUser{ID: 7}, tt.password).
					Return(tt.password, nil)
			}

			body, err := json.Marshal(map[string]any{"user": map[string]any{"id": 7}, "newPassword": tt.password})
			require.NoError(t, err)
			rec := fx.do(http.MethodPut, "/v1/superuser/password", string(body), fx.token)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusBadRequest {
				assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
				assert.Contains(t, rec.Body.String(), `"rule":"bcryptmax"`)
			}
		})
	}
}

func TestAPI_LoginLogsCaller(t *testing.T) {
	var logs bytes.Buffer
	fx := newAPIFixturesWithLog(t, &logs)

	fx.uc.EXPECT().
		UpdateToSuperuserIfPasswordCorrect(mock.Anything, "pw", entity.ExternalUser{ID: 7, FirstName: "Tom"}).
		Return(true, nil)

	rec := fx.do(http.MethodPost, "/v1/superuser/login", `{"user":{"id":7,"firstName":"Tom"},"password":"pw"}`, fx.token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logs.String(), "Superuser login attempt")
	assert.Contains(t, logs.String(), "caller=telegram-bot")
	assert.Contains(t, logs.String(), "user_id=7")
}

func TestAPI_ChangePassword_NotSuperuser(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.uc.EXPECT().
		ChangeSuperuserPassword(mock.Anything, entity.ExternalUser{ID: 7}, "1234").
		Return("", nil)

	rec := fx.do(http.MethodPut, "/v1/superuser/password", `{"user":{"id":7},"newPassword":"1234"}`, fx.token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "NOT_SUPERUSER", decodeError(t, rec).Code)
}

func TestAPI_PropagatesRequestID(t *testing.T) {
	fx := newAPIFixtures(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-123"`)
}
