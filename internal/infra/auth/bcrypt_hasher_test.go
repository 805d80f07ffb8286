package auth

import (
	"strings"
	"testing"

	"botauth/config"
	domainerrors "botauth/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashLength(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	for _, secret := range []string{"1111", "", "correct horse battery staple", "Pässphräse123!"} {
		hash, err := hasher.Hash(secret)
		require.NoError(t, err)
		assert.Len(t, hash, HashLength, "secret %q", secret)
		assert.NotEqual(t, secret, hash)
	}
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("1111")
	require.NoError(t, err)
	second, err := hasher.Hash("1111")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	hash, err := hasher.Hash("1111")
	require.NoError(t, err)

	ok, err := hasher.Check("1111", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Check("2111", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Check("", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_CheckTooLongCandidate(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	hash, err := hasher.Hash("1111")
	require.NoError(t, err)

	ok, err := hasher.Check(strings.Repeat("a", 100), hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	for _, hash := range []string{"111", "invalid_hash", "", strings.Repeat("x", HashLength)} {
		ok, err := hasher.Check("1111", hash)
		assert.False(t, ok)
		require.Error(t, err, "hash %q", hash)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidHashFormat), "hash %q", hash)
	}
}

func TestBcryptHasher_HashTooLongSecret(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestNewBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 5}})

	hash, err := hasher.Hash("1111")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestNewBcryptHasherWithCost_OutOfRangeFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(1)

	assert.Equal(t, bcrypt.DefaultCost, hasher.(*bcryptHasher).cost)
}
