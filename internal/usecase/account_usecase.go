package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ChangePasswordInput defines the data required to rotate an identity's secret.
type ChangePasswordInput struct {
	IdentityID      uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// AccountUsecase covers changes a signed-in identity makes to itself.
type AccountUsecase interface {
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
}
