package impl

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/domain/service"
	mockRepo "inkwell/internal/mocks/repository"
	mockSvc "inkwell/internal/mocks/service"
	"inkwell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// registrationServiceFixtures holds all test dependencies for registration service tests.
type registrationServiceFixtures struct {
	service      usecase.RegistrationUsecase
	identityRepo *mockRepo.MockIdentityRepository
	pendingStore *mockRepo.MockPendingRegistrationStore
	hasher       *mockSvc.MockPasswordHasher
	codes        *mockSvc.MockCodeGenerator
	mailer       *mockSvc.MockCodeMailer
	publisher    *mockSvc.MockEventPublisher
}

func createTestRegistrationService(t *testing.T) registrationServiceFixtures {
	f := registrationServiceFixtures{
		identityRepo: mockRepo.NewMockIdentityRepository(t),
		pendingStore: mockRepo.NewMockPendingRegistrationStore(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		codes:        mockSvc.NewMockCodeGenerator(t),
		mailer:       mockSvc.NewMockCodeMailer(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	f.service = NewRegistrationService(RegistrationServiceParams{
		IdentityRepo: f.identityRepo,
		PendingStore: f.pendingStore,
		Hasher:       f.hasher,
		Codes:        f.codes,
		Mailer:       f.mailer,
		Publisher:    f.publisher,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return f
}

func newSignupInput() *usecase.SignupInput {
	return &usecase.SignupInput{
		Email:       "  Ada@Example.com ",
		Password:    "Password123!",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Phone:       "+441234567890",
		DateOfBirth: time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC),
		Preferences: []string{"tech", "poetry"},
	}
}

func newPending(code string) *entity.PendingRegistration {
	return &entity.PendingRegistration{
		Payload: entity.RegistrationPayload{
			Email:        "ada@example.com",
			PasswordHash: "hashed_password",
			FirstName:    "Ada",
			LastName:     "Lovelace",
			Phone:        "+441234567890",
			DateOfBirth:  time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC),
			Preferences:  []string{"tech"},
		},
		Code: code,
	}
}

func TestRegistrationService_Signup_Success(t *testing.T) {
	f := createTestRegistrationService(t)
	ctx := context.Background()
	input := newSignupInput()

	f.identityRepo.EXPECT().ExistsByEmail(ctx, "ada@example.com").Return(false, nil)
	f.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	f.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	f.codes.EXPECT().Generate().Return("042917", nil)
	f.pendingStore.EXPECT().
		Save(ctx, mock.MatchedBy(func(reg *entity.PendingRegistration) bool {
			return reg.Code == "042917" &&
				reg.Payload.Email == "ada@example.com" &&
				reg.Payload.PasswordHash == "hashed_password" &&
				len(reg.Payload.Preferences) == 2
		}), 10*time.Minute).
		Return(nil)
	f.mailer.EXPECT().SendVerificationCode(ctx, "ada@example.com", "042917", 10*time.Minute).Return(nil)

	out, err := f.service.Signup(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", out.Email)
}

func TestRegistrationService_Signup_DuplicateIdentity(t *testing.T) {
	f := createTestRegistrationService(t)
	ctx := context.Background()

	f.identityRepo.EXPECT().ExistsByEmail(ctx, "ada@example.com").Return(true, nil)

	_, err := f.service.Signup(ctx, newSignupInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentity))
}

func TestRegistrationService_Signup_WeakPassword(t *testing.T) {
	f := createTestRegistrationService(t)
	ctx := context.Background()

	f.identityRepo.EXPECT().ExistsByEmail(ctx, "ada@example.com").Return(false, nil)
	f.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).
		Return(domainerrors.ErrPasswordStrength.WithDetails("password must contain a number"))

	_, err := f.service.Signup(ctx, newSignupInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestRegistrationService_Signup_MailFailureKeepsEntry(t *testing.T) {
	f := createTestRegistrationService(t)
	ctx := context.Background()

	f.identityRepo.EXPECT().ExistsByEmail(ctx, "ada@example.com").Return(false, nil)
	f.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	f.hasher.EXPECT().Hash(mock.Anything).Return("hashed_password", nil)
	f.codes.EXPECT().Generate().Return("042917", nil)
	f.pendingStore.EXPECT().Save(ctx, mock.Anything, mock.Anything).Return(nil)
	f.mailer.EXPECT().SendVerificationCode(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("provider down"))

	_, err := f.service.Signup(ctx, newSignupInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMailDeliveryFailed))
}

func TestRegistrationService_Signup_CacheFailure(t *testing.T) {
	f := createTestRegistrationService(t)
	ctx := context.Background()

	f.identityRepo.EXPECT().ExistsByEmail(ctx, mock.Anything).Return(false, nil)
	f.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	f.hasher.EXPECT().Hash(mock.Anything).Return("hashed_password", nil)
	f.codes.EXPECT().Generate().Return("042917", nil)
	f.pendingStore.EXPECT().Save(ctx, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	_, err := f.service.Signup(ctx, newSignupInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCacheUnavailable))
}

func TestRegistrationService_VerifyCode_Success(t *testing.T) {
	f := createTestRegistrationService(t)
	ctx := context.Background()
	newID := uuid.Must(uuid.NewV7())

	f.pendingStore.EXPECT().Find(ctx, "ada@example.com").Return(newPending("042917"), nil)
	f.pendingStore.EXPECT().Consume(ctx, "ada@example.com", "042917").Return(true, nil)
	f.identityRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Identity")).
		Run(func(_ context.Context, identity *entity.Identity) {
			identity.ID = newID
		}).
		Return(nil)
	f.publisher.EXPECT().
		PublishIdentityRegistered(mock.Anything, mock.MatchedBy(func(e *service.IdentityRegisteredEvent) bool {
			return e.IdentityID == newID.String() && e.Email == "ada@example.com"
		})).
		Return(nil)

	out, err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{Email: "ADA@example.com", Code: "042917"})
	require.NoError(t, err)
	assert.Equal(t, newID, out.Identity.ID)
	assert.Equal(t, "hashed_password", out.Identity.PasswordHash)
	assert.Equal(t, []string{"tech"}, out.Identity.Preferences)
}

func TestRegistrationService_VerifyCode_IncorrectCodeLeavesEntry(t *testing.T) {
	f := createTestRegistrationService(t)
	ctx := context.Background()

	f.pendingStore.EXPECT().Find(ctx, "ada@example.com").Return(newPending("042917"), nil)

	_, err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{Email: "ada@example.com", Code: "000000"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIncorrectCode))
	f.pendingStore.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegistrationService_VerifyCode_NoPendingEntry(t *testing.T) {
	f := createTestRegistrationService(t)
	ctx := context.Background()

	f.pendingStore.EXPECT().Find(ctx, "ada@example.com").Return(nil, repository.ErrPendingRegistrationNotFound)

	_, err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{Email: "ada@example.com", Code: "042917"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestRegistrationService_VerifyCode_LostConsumeRace(t *testing.T) {
	f := createTestRegistrationService(t)
	ctx := context.Background()

	f.pendingStore.EXPECT().Find(ctx, "ada@example.com").Return(newPending("042917"), nil)
	f.pendingStore.EXPECT().Consume(ctx, "ada@example.com", "042917").Return(false, nil)

	_, err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{Email: "ada@example.com", Code: "042917"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
	f.identityRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegistrationService_VerifyCode_EmailTakenAtCreate(t *testing.T) {
	f := createTestRegistrationService(t)
	ctx := context.Background()

	f.pendingStore.EXPECT().Find(ctx, mock.Anything).Return(newPending("042917"), nil)
	f.pendingStore.EXPECT().Consume(ctx, mock.Anything, mock.Anything).Return(true, nil)
	f.identityRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.WithStack(repository.ErrIdentityEmailTaken))

	_, err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{Email: "ada@example.com", Code: "042917"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentity))
}

func TestRegistrationService_VerifyCode_PublishFailureIsNotFatal(t *testing.T) {
	f := createTestRegistrationService(t)
	ctx := context.Background()

	f.pendingStore.EXPECT().Find(ctx, mock.Anything).Return(newPending("042917"), nil)
	f.pendingStore.EXPECT().Consume(ctx, mock.Anything, mock.Anything).Return(true, nil)
	f.identityRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishIdentityRegistered(mock.Anything, mock.Anything).Return(errors.New("topic gone"))

	out, err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{Email: "ada@example.com", Code: "042917"})
	require.NoError(t, err)
	assert.NotNil(t, out.Identity)
}

func TestRegistrationService_ResendCode_ReplacesCode(t *testing.T) {
	f := createTestRegistrationService(t)
	ctx := context.Background()

	f.pendingStore.EXPECT().Find(ctx, "ada@example.com").Return(newPending("042917"), nil)
	f.codes.EXPECT().Generate().Return("913375", nil)
	f.pendingStore.EXPECT().
		Save(ctx, mock.MatchedBy(func(reg *entity.PendingRegistration) bool {
			return reg.Code == "913375" && reg.Payload.PasswordHash == "hashed_password"
		}), 10*time.Minute).
		Return(nil)
	f.mailer.EXPECT().SendVerificationCode(ctx, "ada@example.com", "913375", 10*time.Minute).Return(nil)

	require.NoError(t, f.service.ResendCode(ctx, " ada@example.com"))
}

func TestRegistrationService_ResendCode_NoPendingEntry(t *testing.T) {
	f := createTestRegistrationService(t)
	ctx := context.Background()

	f.pendingStore.EXPECT().Find(ctx, "ada@example.com").Return(nil, repository.ErrPendingRegistrationNotFound)

	err := f.service.ResendCode(ctx, "ada@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}
