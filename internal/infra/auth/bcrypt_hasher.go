package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"inkwell/config"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/service"
)

const (
	defaultMinLength = 8
	// bcrypt ignores everything past 72 bytes.
	bcryptMaxLength = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{
		MinLength:      defaultMinLength,
		MaxLength:      bcryptMaxLength,
		RequireNumbers: true,
		RequireSpecial: true,
	}
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}
	if policy.MaxLength <= 0 || policy.MaxLength > bcryptMaxLength {
		policy.MaxLength = bcryptMaxLength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash; bcrypt handles the salt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	var problems []string

	if len(password) < h.policy.MinLength {
		problems = append(problems, "too short")
	}
	if len(password) > h.policy.MaxLength {
		problems = append(problems, "too long")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if h.policy.RequireUppercase && !hasUpper {
		problems = append(problems, "needs an uppercase letter")
	}
	if h.policy.RequireLowercase && !hasLower {
		problems = append(problems, "needs a lowercase letter")
	}
	if h.policy.RequireNumbers && !hasDigit {
		problems = append(problems, "needs a number")
	}
	if h.policy.RequireSpecial && !hasSpecial {
		problems = append(problems, "needs a special character")
	}

	if len(problems) > 0 {
		return domainerrors.ErrPasswordStrength.WithDetails(strings.Join(problems, "; "))
	}

	return nil
}
