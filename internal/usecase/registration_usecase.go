// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"inkwell/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput is the identity proposed by a new user. Password is plaintext here.
type SignupInput struct {
	Email          string
	Password       string
	FirstName      string
	LastName       string
	Phone          string
	DateOfBirth    time.Time
	ProfilePicture string
	Preferences    []string
}

// VerifyCodeInput pairs an email with the one-time code it was sent.
type VerifyCodeInput struct {
	Email string
	Code  string
}

// --- Output DTOs ---

// SignupOutput echoes the normalized email the code was sent to.
type SignupOutput struct {
	Email string
}

// VerifyCodeOutput returns the identity created by a successful verification.
type VerifyCodeOutput struct {
	Identity *entity.Identity
}

// RegistrationUsecase stages signups and turns verified ones into identities.
type RegistrationUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	VerifyCode(ctx context.Context, input *VerifyCodeInput) (*VerifyCodeOutput, error)
	ResendCode(ctx context.Context, email string) error
}
