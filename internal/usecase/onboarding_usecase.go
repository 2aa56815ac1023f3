package usecase

import (
	"context"

	"inkwell/internal/domain/service"
)

// OnboardingUsecase reacts to identities that have just been registered.
type OnboardingUsecase interface {
	// Welcome greets the identity named by event. Errors whose AppError code
	// is below 500 are permanent; anything else is worth redelivering.
	Welcome(ctx context.Context, event *service.IdentityRegisteredEvent) error
}
