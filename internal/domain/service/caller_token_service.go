package service

import "time"

// CallerClaims identifies the process calling the command API.
type CallerClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// CallerTokenService issues and validates the bearer tokens presented by the bot process.
type CallerTokenService interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Validate(token string) (*CallerClaims, error)
}
