package impl

import (
	"context"
	"log/slog"

	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/domain/service"
	"inkwell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	identityRepo repository.IdentityRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	identityRepo repository.IdentityRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		identityRepo: identityRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signin checks credentials and issues a token pair. Unknown email and wrong
// password are reported identically.
func (srv *sessionService) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.SigninOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	identity, err := srv.identityRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		srv.log(ctx).Debug("Signin for unknown email", slog.String("email", email))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find identity")
	}

	if !srv.hasher.Check(input.Password, identity.PasswordHash) {
		srv.log(ctx).Debug("Signin with wrong password", slog.String("identity_id", identity.ID.String()))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	accessToken, err := srv.tokenService.IssueAccess(identity.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}
	refreshToken, err := srv.tokenService.IssueRefresh(identity.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Info("Identity signed in", slog.String("identity_id", identity.ID.String()))

	return &usecase.SigninOutput{
		Identity:     identity,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh mints a new access token from a refresh token.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	if refreshToken == "" {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenMissing)
	}

	switch v := srv.tokenService.VerifyRefresh(refreshToken).(type) {
	case service.ValidToken:
		accessToken, err := srv.tokenService.IssueAccess(v.IdentityID)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
		}

		return &usecase.RefreshOutput{AccessToken: accessToken}, nil
	case service.InvalidToken:
		srv.log(ctx).Debug("Rejected refresh token", slog.String("reason", string(v.Reason)))
	}

	return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
}

// Authenticate resolves the identity behind a verified access token.
func (srv *sessionService) Authenticate(ctx context.Context, identityID uuid.UUID) (*entity.Identity, error) {
	identity, err := srv.identityRepo.FindByID(ctx, identityID)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find identity")
	}

	return identity, nil
}
