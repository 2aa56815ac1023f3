package impl

import (
	"io"
	"log/slog"
	"time"

	"inkwell/config"
	"inkwell/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth:         &config.AuthConfig{BcryptCost: 4},
		Registration: &config.RegistrationConfig{CodeLength: 6, CodeTTL: 10 * time.Minute},
	}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	return cfg
}

func newTestIdentity() *entity.Identity {
	return &entity.Identity{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        "ada@example.com",
		PasswordHash: "hashed_password",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Phone:        "+441234567890",
		DateOfBirth:  time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC),
		Preferences:  []string{"tech"},
		CreatedAt:    time.Now().UTC(),
	}
}
