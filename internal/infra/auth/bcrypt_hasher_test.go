package auth

import (
	"testing"

	"inkwell/config"
	domainerrors "inkwell/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newHasherConfig() *config.Config {
	return &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig())

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig())

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_ValidatePasswordStrength_Default(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig())

	assert.NoError(t, hasher.ValidatePasswordStrength("letmein1!"))

	weak := []string{
		"a1!",          // too short
		"password!!",   // no number
		"password123",  // no special character
		string(make([]byte, 80)),
	}
	for _, pw := range weak {
		err := hasher.ValidatePasswordStrength(pw)
		require.Error(t, err, "expected error for %q", pw)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	}
}

func TestBcryptHasher_ValidatePasswordStrength_Configured(t *testing.T) {
	cfg := newHasherConfig()
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength:        10,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
	}
	hasher := NewBcryptHasher(cfg)

	assert.NoError(t, hasher.ValidatePasswordStrength("Abcdefghi1"))

	err := hasher.ValidatePasswordStrength("abcdefghi1")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PASSWORD_STRENGTH", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "uppercase")
}
