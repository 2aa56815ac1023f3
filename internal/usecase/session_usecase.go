package usecase

import (
	"context"

	"inkwell/internal/domain/entity"

	"github.com/google/uuid"
)

// SigninInput defines the data required for an identity to sign in.
type SigninInput struct {
	Email    string
	Password string
}

// SigninOutput returns the generated tokens after a successful sign-in.
type SigninOutput struct {
	Identity     *entity.Identity
	AccessToken  string
	RefreshToken string
}

// RefreshOutput carries a freshly minted access token.
type RefreshOutput struct {
	AccessToken string
}

// SessionUsecase issues and renews tokens. Sessions are stateless: nothing is
// stored server-side, so signing out is purely a client and cookie concern.
type SessionUsecase interface {
	Signin(ctx context.Context, input *SigninInput) (*SigninOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)
	Authenticate(ctx context.Context, identityID uuid.UUID) (*entity.Identity, error)
}
