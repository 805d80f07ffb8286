package auth

import (
	"crypto/rand"
	"math/big"

	"botauth/config"
	domainerrors "botauth/internal/domain/errors"
	"botauth/internal/domain/service"
	"botauth/internal/errors"
)

const (
	secretAlphabet       = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	defaultSecretLength  = 16
	maxBcryptInputLength = 72
)

type randomSecretGenerator struct {
	length int
}

// NewSecretGenerator returns a generator producing passwords of the configured length.
// Look-alike characters (0/O, 1/l/I) are left out since operators read these aloud.
func NewSecretGenerator(cfg *config.Config) service.SecretGenerator {
	length := defaultSecretLength
	if cfg != nil && cfg.Auth != nil && cfg.Auth.GeneratedPasswordLength > 0 {
		length = cfg.Auth.GeneratedPasswordLength
	}

	return NewSecretGeneratorWithLength(length)
}

// NewSecretGeneratorWithLength clamps length to what bcrypt can hash.
func NewSecretGeneratorWithLength(length int) service.SecretGenerator {
	if length <= 0 {
		length = defaultSecretLength
	}
	if length > maxBcryptInputLength {
		length = maxBcryptInputLength
	}

	return &randomSecretGenerator{length: length}
}

func (g *randomSecretGenerator) Generate() (string, error) {
	limit := big.NewInt(int64(len(secretAlphabet)))
	out := make([]byte, g.length)

	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(domainerrors.ErrSecretGenerationFailed.WithDetails(err.Error()), "rand.Int")
		}
		out[i] = secretAlphabet[n.Int64()]
	}

	return string(out), nil
}
