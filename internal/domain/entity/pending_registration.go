package entity

import "time"

// RegistrationPayload is the identity proposed at signup. The password is
// already hashed when the payload is staged.
type RegistrationPayload struct {
	Email          string    `json:"email"`
	PasswordHash   string    `json:"passwordHash"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Phone          string    `json:"phone"`
	DateOfBirth    time.Time `json:"dob"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Preferences    []string  `json:"preferences"`
}

// PendingRegistration is a staged signup waiting for its one-time code.
// At most one exists per email; it is replaced wholesale on resend.
type PendingRegistration struct {
	Payload RegistrationPayload
	Code    string
}

// ToIdentity builds the durable identity created once the code is verified.
func (p *PendingRegistration) ToIdentity() *Identity {
	prefs := make([]string, len(p.Payload.Preferences))
	copy(prefs, p.Payload.Preferences)

	return &Identity{
		Email:          p.Payload.Email,
		PasswordHash:   p.Payload.PasswordHash,
		FirstName:      p.Payload.FirstName,
		LastName:       p.Payload.LastName,
		Phone:          p.Payload.Phone,
		DateOfBirth:    p.Payload.DateOfBirth,
		ProfilePicture: p.Payload.ProfilePicture,
		Preferences:    prefs,
	}
}
