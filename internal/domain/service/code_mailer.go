package service

import (
	"context"
	"time"
)

// CodeMailer delivers one-time codes out of band.
type CodeMailer interface {
	SendVerificationCode(ctx context.Context, email, code string, validFor time.Duration) error
}

// WelcomeMailer greets a newly registered identity.
type WelcomeMailer interface {
	SendWelcome(ctx context.Context, email string, preferences []string) error
}
