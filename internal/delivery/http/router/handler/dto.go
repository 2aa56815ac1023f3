package handler

import (
	"time"

	"inkwell/internal/delivery/http/validator"
	"inkwell/internal/domain/entity"
)

// --- Requests ---

type signupRequest struct {
	Email          string   `json:"email" validate:"required,email"`
	Password       string   `json:"password" validate:"required"`
	FirstName      string   `json:"firstName" validate:"required,min=2,max=100"`
	LastName       string   `json:"lastName" validate:"required,min=2,max=100"`
	Phone          string   `json:"phone" validate:"required,phone"`
	DateOfBirth    string   `json:"dob" validate:"required,past"`
	ProfilePicture string   `json:"profilePicture" validate:"omitempty,url"`
	Preferences    []string `json:"preferences" validate:"required,min=1,dive,required"`
}

type verifyCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

type resendCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type signinRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// --- Responses ---

// IdentityResponse is the public view of an identity. The password hash never leaves the server.
type IdentityResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Phone          string    `json:"phone"`
	DateOfBirth    string    `json:"dob"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Preferences    []string  `json:"preferences"`
	CreatedAt      time.Time `json:"createdAt"`
}

func newIdentityResponse(identity *entity.Identity) *IdentityResponse {
	prefs := identity.Preferences
	if prefs == nil {
		prefs = []string{}
	}

	return &IdentityResponse{
		ID:             identity.ID.String(),
		Email:          identity.Email,
		FirstName:      identity.FirstName,
		LastName:       identity.LastName,
		Phone:          identity.Phone,
		DateOfBirth:    identity.DateOfBirth.Format(validator.DateLayout),
		ProfilePicture: identity.ProfilePicture,
		Preferences:    prefs,
		CreatedAt:      identity.CreatedAt,
	}
}

type signupResponse struct {
	Email string `json:"email"`
}

type identityEnvelope struct {
	Identity *IdentityResponse `json:"identity"`
}

type signinResponse struct {
	Identity *IdentityResponse `json:"identity"`
	Token    string            `json:"token"`
}

type tokenResponse struct {
	Token string `json:"token"`
}
