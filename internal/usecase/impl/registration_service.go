// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"inkwell/config"
	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/domain/service"
	"inkwell/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const publishTimeout = 5 * time.Second

// registrationService implements the RegistrationUsecase interface.
type registrationService struct {
	identityRepo repository.IdentityRepository
	pendingStore repository.PendingRegistrationStore
	hasher       service.PasswordHasher
	codes        service.CodeGenerator
	mailer       service.CodeMailer
	publisher    service.EventPublisher
	codeTTL      time.Duration
	logger       *slog.Logger
}

// RegistrationServiceParams holds dependencies for RegistrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	PendingStore repository.PendingRegistrationStore
	Hasher       service.PasswordHasher
	Codes        service.CodeGenerator
	Mailer       service.CodeMailer
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	codeTTL := config.DefaultCodeTTL
	if params.Config != nil && params.Config.Registration != nil && params.Config.Registration.CodeTTL > 0 {
		codeTTL = params.Config.Registration.CodeTTL
	}

	return &registrationService{
		identityRepo: params.IdentityRepo,
		pendingStore: params.PendingStore,
		hasher:       params.Hasher,
		codes:        params.Codes,
		mailer:       params.Mailer,
		publisher:    params.Publisher,
		codeTTL:      codeTTL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup stages the proposed identity and mails a one-time code. Nothing is
// written to the credential store until the code is verified.
func (srv *registrationService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	exists, err := srv.identityRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check identity email")
	}
	if exists {
		return nil, errors.WithStack(domainerrors.ErrDuplicateIdentity)
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.WithStack(err)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	registration := &entity.PendingRegistration{
		Payload: entity.RegistrationPayload{
			Email:          email,
			PasswordHash:   hash,
			FirstName:      input.FirstName,
			LastName:       input.LastName,
			Phone:          input.Phone,
			DateOfBirth:    input.DateOfBirth,
			ProfilePicture: input.ProfilePicture,
			Preferences:    input.Preferences,
		},
	}

	if err := srv.stageAndSend(ctx, registration); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Signup staged", slog.String("email", email))

	return &usecase.SignupOutput{Email: email}, nil
}

// VerifyCode promotes a pending registration to an identity. The conditional
// delete in the store is the commit point: only the caller that removes the
// entry goes on to create the identity.
func (srv *registrationService) VerifyCode(ctx context.Context, input *usecase.VerifyCodeInput) (*usecase.VerifyCodeOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	registration, err := srv.findPending(ctx, email)
	if err != nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(registration.Code), []byte(input.Code)) != 1 {
		srv.log(ctx).Debug("Incorrect verification code", slog.String("email", email))

		return nil, errors.WithStack(domainerrors.ErrIncorrectCode)
	}

	consumed, err := srv.pendingStore.Consume(ctx, email, input.Code)
	if err != nil {
		srv.log(ctx).Error("Failed to consume pending registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCacheUnavailable, err.Error())
	}
	if !consumed {
		// Lost the race to a concurrent verify, an expiry or a resend.
		return nil, errors.WithStack(domainerrors.ErrSessionExpired)
	}

	identity := registration.ToIdentity()
	if err := srv.identityRepo.Create(ctx, identity); err != nil {
		if errors.Is(err, repository.ErrIdentityEmailTaken) {
			return nil, errors.WithStack(domainerrors.ErrDuplicateIdentity)
		}
		srv.log(ctx).Error("Failed to create identity", slog.Any("error", err), slog.String("email", email))

		return nil, errors.Wrap(err, "failed to create identity")
	}

	srv.publishRegistered(ctx, identity)
	srv.log(ctx).Info("Identity registered", slog.String("identity_id", identity.ID.String()))

	return &usecase.VerifyCodeOutput{Identity: identity}, nil
}

// ResendCode replaces the code of an existing pending registration and resets its TTL.
func (srv *registrationService) ResendCode(ctx context.Context, email string) error {
	email = entity.NormalizeEmail(email)

	registration, err := srv.findPending(ctx, email)
	if err != nil {
		return err
	}

	if err := srv.stageAndSend(ctx, registration); err != nil {
		return err
	}

	srv.log(ctx).Info("Verification code resent", slog.String("email", email))

	return nil
}

func (srv *registrationService) findPending(ctx context.Context, email string) (*entity.PendingRegistration, error) {
	registration, err := srv.pendingStore.Find(ctx, email)
	if errors.Is(err, repository.ErrPendingRegistrationNotFound) {
		return nil, errors.WithStack(domainerrors.ErrSessionExpired)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load pending registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCacheUnavailable, err.Error())
	}

	return registration, nil
}

// stageAndSend assigns a fresh code, saves the whole entry and mails the code.
// A delivery failure leaves the entry in place so the user can ask for a resend.
func (srv *registrationService) stageAndSend(ctx context.Context, registration *entity.PendingRegistration) error {
	code, err := srv.codes.Generate()
	if err != nil {
		return errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}
	registration.Code = code

	if err := srv.pendingStore.Save(ctx, registration, srv.codeTTL); err != nil {
		srv.log(ctx).Error("Failed to save pending registration", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrCacheUnavailable, err.Error())
	}

	if err := srv.mailer.SendVerificationCode(ctx, registration.Payload.Email, code, srv.codeTTL); err != nil {
		srv.log(ctx).Error("Failed to deliver verification code",
			slog.Any("error", err), slog.String("email", registration.Payload.Email))

		return errors.Wrap(domainerrors.ErrMailDeliveryFailed, err.Error())
	}

	return nil
}

// publishRegistered is best effort; the identity already exists.
func (srv *registrationService) publishRegistered(ctx context.Context, identity *entity.Identity) {
	if srv.publisher == nil {
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := &service.IdentityRegisteredEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		IdentityID:   identity.ID.String(),
		Email:        identity.Email,
		Preferences:  identity.Preferences,
		RegisteredAt: identity.CreatedAt,
	}
	if err := srv.publisher.PublishIdentityRegistered(pubCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish identity registered event",
			slog.Any("error", err), slog.String("identity_id", event.IdentityID))
	}
}
