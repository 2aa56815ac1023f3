package impl

import (
	"context"
	"log/slog"

	deliverycontext "inkwell/internal/delivery/context"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/domain/service"
	"inkwell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type onboardingService struct {
	identityRepo repository.IdentityRepository
	mailer       service.WelcomeMailer
	logger       *slog.Logger
}

// NewOnboardingService creates a new onboarding service
func NewOnboardingService(
	identityRepo repository.IdentityRepository,
	mailer service.WelcomeMailer,
	logger *slog.Logger,
) usecase.OnboardingUsecase {
	return &onboardingService{
		identityRepo: identityRepo,
		mailer:       mailer,
		logger:       logger,
	}
}

// Welcome mails the identity as it is stored now, not as the event describes it.
func (srv *onboardingService) Welcome(ctx context.Context, event *service.IdentityRegisteredEvent) error {
	identityID, err := uuid.Parse(event.IdentityID)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("identity_id is not a UUID"))
	}

	identity, err := srv.identityRepo.FindByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return errors.WithStack(domainerrors.ErrIdentityNotFound)
		}

		return errors.Wrap(err, "failed to find identity")
	}

	if err := srv.mailer.SendWelcome(ctx, identity.Email, identity.Preferences); err != nil {
		return errors.Wrap(domainerrors.ErrMailDeliveryFailed, err.Error())
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Welcome mail sent",
		slog.String("identity_id", identity.ID.String()))

	return nil
}
