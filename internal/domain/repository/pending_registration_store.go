package repository

import (
	"context"
	"errors"
	"time"

	"inkwell/internal/domain/entity"
)

// ErrPendingRegistrationNotFound means the entry never existed, expired, or was consumed.
var ErrPendingRegistrationNotFound = errors.New("pending registration not found")

// PendingRegistrationStore is the short-lived, email-keyed staging area for signups.
type PendingRegistrationStore interface {
	// Save writes the whole entry and resets its TTL, replacing any previous one.
	Save(ctx context.Context, registration *entity.PendingRegistration, ttl time.Duration) error

	// Find returns ErrPendingRegistrationNotFound when no entry is stored for email.
	Find(ctx context.Context, email string) (*entity.PendingRegistration, error)

	// Consume deletes the entry for email only if it still carries code, and
	// reports whether it did. Exactly one concurrent caller observes true.
	Consume(ctx context.Context, email, code string) (bool, error)
}
