package auth

import (
	"time"

	"botauth/config"
	domainerrors "botauth/internal/domain/errors"
	"botauth/internal/domain/service"
	"botauth/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const callerTokenIssuer = "botauth"

// callerTokenService signs and verifies HS256 tokens for the bot process calling the command API.
type callerTokenService struct {
	secret []byte
	now    func() time.Time
}

// NewCallerTokenService is the constructor for callerTokenService.
func NewCallerTokenService(cfg *config.Config) (service.CallerTokenService, error) {
	if cfg == nil || cfg.HTTP.CallerSecret == "" {
		return nil, errors.New("http.callerSecret must be provided")
	}

	return &callerTokenService{
		secret: []byte(cfg.HTTP.CallerSecret),
		now:    time.Now,
	}, nil
}

// Issue creates a token for subject. A zero ttl produces a token without expiry.
func (s *callerTokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "caller subject is required")
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:   callerTokenIssuer,
		Subject:  subject,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign caller token")
	}

	return token, nil
}

// Validate checks signature, issuer and expiry of a caller token.
func (s *callerTokenService) Validate(tokenString string) (*service.CallerClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(callerTokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized.WithDetails(err.Error()), "invalid caller token")
	}

	if claims.Subject == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "caller token has no subject")
	}

	out := &service.CallerClaims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}
