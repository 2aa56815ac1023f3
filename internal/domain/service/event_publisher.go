package service

import (
	"context"
	"time"
)

// IdentityRegisteredEvent is emitted once a pending registration becomes an identity.
type IdentityRegisteredEvent struct {
	RequestID    string    `json:"request_id,omitempty"`
	IdentityID   string    `json:"identity_id"`
	Email        string    `json:"email"`
	Preferences  []string  `json:"preferences,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishIdentityRegistered(ctx context.Context, event *IdentityRegisteredEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
