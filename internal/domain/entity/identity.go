// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identity is a verified account: the only durable record this service owns.
type Identity struct {
	ID             uuid.UUID
	Email          string
	PasswordHash   string
	FirstName      string
	LastName       string
	Phone          string
	DateOfBirth    time.Time
	ProfilePicture string
	Preferences    []string // References to preference (topic) records.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NormalizeEmail returns the canonical form used as the lookup and cache key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
