package impl

import (
	"context"
	"testing"

	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/domain/service"
	mockRepo "inkwell/internal/mocks/repository"
	mockSvc "inkwell/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOnboardingService_Welcome(t *testing.T) {
	identity := newTestIdentity()
	event := &service.IdentityRegisteredEvent{IdentityID: identity.ID.String(), Email: "stale@example.com"}

	tests := []struct {
		name      string
		event     *service.IdentityRegisteredEvent
		setup     func(repo *mockRepo.MockIdentityRepository, mailer *mockSvc.MockWelcomeMailer)
		wantErr   error
		opaque    bool
		permanent bool
	}{
		{
			name:  "mails the stored address",
			event: event,
			setup: func(repo *mockRepo.MockIdentityRepository, mailer *mockSvc.MockWelcomeMailer) {
				repo.EXPECT().FindByID(mock.Anything, identity.ID).Return(identity, nil)
				mailer.EXPECT().SendWelcome(mock.Anything, identity.Email, identity.Preferences).Return(nil)
			},
		},
		{
			name:      "malformed identity id",
			event:     &service.IdentityRegisteredEvent{IdentityID: "nope"},
			setup:     func(*mockRepo.MockIdentityRepository, *mockSvc.MockWelcomeMailer) {},
			wantErr:   domainerrors.ErrValidationFailed,
			permanent: true,
		},
		{
			name:  "identity gone",
			event: event,
			setup: func(repo *mockRepo.MockIdentityRepository, _ *mockSvc.MockWelcomeMailer) {
				repo.EXPECT().FindByID(mock.Anything, identity.ID).Return(nil, repository.ErrIdentityNotFound)
			},
			wantErr:   domainerrors.ErrIdentityNotFound,
			permanent: true,
		},
		{
			name:  "mail provider down",
			event: event,
			setup: func(repo *mockRepo.MockIdentityRepository, mailer *mockSvc.MockWelcomeMailer) {
				repo.EXPECT().FindByID(mock.Anything, identity.ID).Return(identity, nil)
				mailer.EXPECT().SendWelcome(mock.Anything, identity.Email, identity.Preferences).Return(errors.New("503"))
			},
			wantErr: domainerrors.ErrMailDeliveryFailed,
		},
		{
			name:  "database down",
			event: event,
			setup: func(repo *mockRepo.MockIdentityRepository, _ *mockSvc.MockWelcomeMailer) {
				repo.EXPECT().FindByID(mock.Anything, identity.ID).Return(nil, errors.New("connection refused"))
			},
			opaque: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockIdentityRepository(t)
			mailer := mockSvc.NewMockWelcomeMailer(t)
			tt.setup(repo, mailer)

			err := NewOnboardingService(repo, mailer, newDiscardLogger()).Welcome(context.Background(), tt.event)

			if tt.opaque {
				require.Error(t, err)
				var appErr domainerrors.AppError
				assert.False(t, errors.As(err, &appErr))
				return
			}
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.permanent, appErr.HTTPCode() < 500)
		})
	}
}
