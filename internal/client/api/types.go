package api

import (
	"encoding/json"
	"time"
)

// Identity is the public view of a registered user.
type Identity struct {
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

// SignupRequest is the proposed identity. DateOfBirth is YYYY-MM-DD.
type SignupRequest struct {
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Phone          string   `json:"phone"`
	DateOfBirth    string   `json:"dob"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	Preferences    []string `json:"preferences"`
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *envelopeDetail `json:"error,omitempty"`
}

type envelopeDetail struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

type identityData struct {
	Identity *Identity `json:"identity"`
}

type signinData struct {
	Identity *Identity `json:"identity"`
	Token    string    `json:"token"`
}

type tokenData struct {
	Token string `json:"token"`
}

type emailData struct {
	Email string `json:"email"`
}
