// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"inkwell/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrIdentityNotFound is returned when no identity matches the lookup.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrIdentityEmailTaken is returned when the unique email constraint rejects a write.
	ErrIdentityEmailTaken = errors.New("identity email already taken")
)

// IdentityRepository persists verified identities.
type IdentityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByEmail expects an already normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create assigns ID and timestamps on the passed entity.
	Create(ctx context.Context, identity *entity.Identity) error

	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}
