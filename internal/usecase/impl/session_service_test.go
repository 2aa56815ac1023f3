package impl

import (
	"context"
	"testing"

	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/domain/service"
	"inkwell/internal/infra/auth"
	mockRepo "inkwell/internal/mocks/repository"
	mockSvc "inkwell/internal/mocks/service"
	"inkwell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service      usecase.SessionUsecase
	identityRepo *mockRepo.MockIdentityRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return sessionServiceFixtures{
		service:      NewSessionService(identityRepo, hasher, tokenService, newDiscardLogger()),
		identityRepo: identityRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestSessionService_Signin_Success(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	identity := newTestIdentity()

	f.identityRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(identity, nil)
	f.hasher.EXPECT().Check("Password123!", identity.PasswordHash).Return(true)
	f.tokenService.EXPECT().IssueAccess(identity.ID).Return("access", nil)
	f.tokenService.EXPECT().IssueRefresh(identity.ID).Return("refresh", nil)

	out, err := f.service.Signin(ctx, &usecase.SigninInput{Email: "Ada@Example.com", Password: "Password123!"})
	require.NoError(t, err)
	assert.Equal(t, identity, out.Identity)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
}

func TestSessionService_Signin_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		f := createTestSessionService(t)
		f.identityRepo.EXPECT().FindByEmail(mock.Anything, "nobody@example.com").Return(nil, repository.ErrIdentityNotFound)

		_, err := f.service.Signin(context.Background(), &usecase.SigninInput{Email: "nobody@example.com", Password: "x"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		f := createTestSessionService(t)
		identity := newTestIdentity()
		f.identityRepo.EXPECT().FindByEmail(mock.Anything, identity.Email).Return(identity, nil)
		f.hasher.EXPECT().Check("wrong", identity.PasswordHash).Return(false)

		_, err := f.service.Signin(context.Background(), &usecase.SigninInput{Email: identity.Email, Password: "wrong"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestSessionService_Signin_RepositoryError(t *testing.T) {
	f := createTestSessionService(t)
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "failed to find identity by email")
	f.identityRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, dbErr)

	_, err := f.service.Signin(context.Background(), &usecase.SigninInput{Email: "ada@example.com", Password: "x"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestSessionService_Refresh(t *testing.T) {
	identityID := uuid.Must(uuid.NewV7())

	tests := []struct {
		name         string
		token        string
		verification service.TokenVerification
		wantErr      error
	}{
		{name: "missing", token: "", wantErr: domainerrors.ErrRefreshTokenMissing},
		{name: "expired", token: "t", verification: service.InvalidToken{Reason: service.ReasonExpired}, wantErr: domainerrors.ErrRefreshTokenInvalid},
		{name: "wrong kind", token: "t", verification: service.InvalidToken{Reason: service.ReasonWrongKind}, wantErr: domainerrors.ErrRefreshTokenInvalid},
		{name: "valid", token: "t", verification: service.ValidToken{IdentityID: identityID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestSessionService(t)
			if tt.verification != nil {
				f.tokenService.EXPECT().VerifyRefresh(tt.token).Return(tt.verification)
			}
			if tt.wantErr == nil {
				f.tokenService.EXPECT().IssueAccess(identityID).Return("new-access", nil)
			}

			out, err := f.service.Refresh(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "new-access", out.AccessToken)
		})
	}
}

func TestSessionService_Refresh_WithJWTService(t *testing.T) {
	tokenService, err := auth.NewJWTService(newTestConfig())
	require.NoError(t, err)
	srv := NewSessionService(mockRepo.NewMockIdentityRepository(t), mockSvc.NewMockPasswordHasher(t), tokenService, newDiscardLogger())

	identityID := uuid.Must(uuid.NewV7())
	refresh, err := tokenService.IssueRefresh(identityID)
	require.NoError(t, err)
	access, err := tokenService.IssueAccess(identityID)
	require.NoError(t, err)

	out, err := srv.Refresh(context.Background(), refresh)
	require.NoError(t, err)
	verified, ok := tokenService.VerifyAccess(out.AccessToken).(service.ValidToken)
	require.True(t, ok)
	assert.Equal(t, identityID, verified.IdentityID)

	// An access token never works as a refresh token.
	_, err = srv.Refresh(context.Background(), access)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestSessionService_Authenticate(t *testing.T) {
	f := createTestSessionService(t)
	identity := newTestIdentity()
	missing := uuid.Must(uuid.NewV7())

	f.identityRepo.EXPECT().FindByID(mock.Anything, identity.ID).Return(identity, nil)
	f.identityRepo.EXPECT().FindByID(mock.Anything, missing).Return(nil, repository.ErrIdentityNotFound)

	got, err := f.service.Authenticate(context.Background(), identity.ID)
	require.NoError(t, err)
	assert.Equal(t, identity, got)

	_, err = f.service.Authenticate(context.Background(), missing)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
