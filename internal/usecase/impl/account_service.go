package impl

import (
	"context"
	"log/slog"

	deliverycontext "inkwell/internal/delivery/context"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/domain/service"
	"inkwell/internal/usecase"

	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager: txManager,
		hasher:    hasher,
		logger:    logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ChangePassword verifies the current secret and stores a hash of the new one.
func (srv *accountService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing password", slog.String("identity_id", input.IdentityID.String()))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.NewIdentityRepository()

		// 1. Load the identity
		identity, err := identityRepo.FindByID(ctx, input.IdentityID)
		if err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				return errors.WithStack(domainerrors.ErrIdentityNotFound)
			}

			return errors.Wrap(err, "failed to find identity")
		}

		// 2. Check the current secret
		if !srv.hasher.Check(input.CurrentPassword, identity.PasswordHash) {
			return errors.WithStack(domainerrors.ErrIncorrectPassword)
		}

		// 3. Validate and hash the new one
		if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
			return errors.WithStack(err)
		}
		hash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		// 4. Persist
		if err := identityRepo.UpdatePasswordHash(ctx, identity.ID, hash); err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				return errors.WithStack(domainerrors.ErrIdentityNotFound)
			}

			return errors.Wrap(err, "failed to update password")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to change password", slog.Any("error", err),
			slog.String("identity_id", input.IdentityID.String()))

		return err
	}

	srv.log(ctx).Info("Password changed", slog.String("identity_id", input.IdentityID.String()))

	return nil
}
