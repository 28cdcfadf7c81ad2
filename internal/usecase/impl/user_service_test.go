package impl

import (
	"context"
	"testing"

	"placeswipe/internal/domain/entity"
	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/domain/repository"
	mockRepo "placeswipe/internal/mocks/repository"
	"placeswipe/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	userRepo   *mockRepo.MockUserRepository
	txUserRepo *mockRepo.MockUserRepository
	prefRepo   *mockRepo.MockLocationPreferenceRepository
}

func newUserServiceForTest(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	m := &userServiceMocks{
		txManager:  mockRepo.NewMockTransactionManager(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		txUserRepo: mockRepo.NewMockUserRepository(t),
		prefRepo:   mockRepo.NewMockLocationPreferenceRepository(t),
	}

	srv := NewUserService(UserServiceParams{
		TxManager: m.txManager,
		UserRepo:  m.userRepo,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return srv, m
}

// runInTx makes the transaction manager call fn with the mock factory.
func (m *userServiceMocks) runInTx(ctx context.Context) {
	m.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func TestUserService_CompleteOnboarding_Explorer(t *testing.T) {
	srv, m := newUserServiceForTest(t)
	ctx := context.Background()
	session := explorerSession()

	m.userRepo.EXPECT().FindByExternalAuthID(ctx, "user_explorer").Return(nil, repository.ErrUserNotFound)
	m.runInTx(ctx)
	m.factory.EXPECT().NewUserRepository().Return(m.txUserRepo)
	m.txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = 7

			return nil
		})
	m.factory.EXPECT().NewLocationPreferenceRepository().Return(m.prefRepo)
	m.prefRepo.EXPECT().
		Upsert(ctx, &entity.LocationPreference{UserID: 7, SearchRadiusKm: 5}).
		Return(&entity.LocationPreference{ID: 1, UserID: 7, SearchRadiusKm: 5}, nil)

	user, err := srv.CompleteOnboarding(ctx, session, &usecase.CompleteOnboardingInput{
		FullName: "  Ana Silva ",
		Role:     entity.RoleExplorer,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "user_explorer", user.ExternalAuthID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana Silva", user.FullName)
	assert.Equal(t, entity.RoleExplorer, user.Role)
}

func TestUserService_CompleteOnboarding_BusinessHasNoPreference(t *testing.T) {
	srv, m := newUserServiceForTest(t)
	ctx := context.Background()

	m.userRepo.EXPECT().FindByExternalAuthID(ctx, "user_business").Return(nil, repository.ErrUserNotFound)
	m.runInTx(ctx)
	m.factory.EXPECT().NewUserRepository().Return(m.txUserRepo)
	m.txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := srv.CompleteOnboarding(ctx, businessSession(), &usecase.CompleteOnboardingInput{
		FullName: "Café Central",
		Role:     entity.RoleBusiness,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBusiness, user.Role)
}

func TestUserService_CompleteOnboarding_ExistingUserUnchanged(t *testing.T) {
	srv, m := newUserServiceForTest(t)
	ctx := context.Background()
	existing := &entity.User{ID: 3, ExternalAuthID: "user_explorer", FullName: "Ana", Role: entity.RoleExplorer}

	m.userRepo.EXPECT().FindByExternalAuthID(ctx, "user_explorer").Return(existing, nil)

	user, err := srv.CompleteOnboarding(ctx, explorerSession(), &usecase.CompleteOnboardingInput{
		FullName: "Someone Else",
		Role:     entity.RoleBusiness,
	})
	require.NoError(t, err)
	assert.Same(t, existing, user)
}

func TestUserService_CompleteOnboarding_ConcurrentCreate(t *testing.T) {
	srv, m := newUserServiceForTest(t)
	ctx := context.Background()
	winner := &entity.User{ID: 9, ExternalAuthID: "user_explorer", Role: entity.RoleExplorer}

	m.userRepo.EXPECT().FindByExternalAuthID(ctx, "user_explorer").Return(nil, repository.ErrUserNotFound).Once()
	m.runInTx(ctx)
	m.factory.EXPECT().NewUserRepository().Return(m.txUserRepo)
	m.txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.Wrap(repository.ErrUserAlreadyExists, "failed to insert user"))
	m.userRepo.EXPECT().FindByExternalAuthID(ctx, "user_explorer").Return(winner, nil).Once()

	user, err := srv.CompleteOnboarding(ctx, explorerSession(), &usecase.CompleteOnboardingInput{
		FullName: "Ana",
		Role:     entity.RoleExplorer,
	})
	require.NoError(t, err)
	assert.Same(t, winner, user)
}

func TestUserService_CompleteOnboarding_Rejects(t *testing.T) {
	ctx := context.Background()

	t.Run("no session", func(t *testing.T) {
		srv, _ := newUserServiceForTest(t)

		_, err := srv.CompleteOnboarding(ctx, nil, &usecase.CompleteOnboardingInput{FullName: "Ana", Role: entity.RoleExplorer})
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("session without email", func(t *testing.T) {
		srv, m := newUserServiceForTest(t)
		session := explorerSession()
		session.Email = ""

		m.userRepo.EXPECT().FindByExternalAuthID(ctx, "user_explorer").Return(nil, repository.ErrUserNotFound)

		_, err := srv.CompleteOnboarding(ctx, session, &usecase.CompleteOnboardingInput{FullName: "Ana", Role: entity.RoleExplorer})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("transaction failure", func(t *testing.T) {
		srv, m := newUserServiceForTest(t)

		m.userRepo.EXPECT().FindByExternalAuthID(ctx, "user_explorer").Return(nil, repository.ErrUserNotFound)
		m.txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("deadlock detected"))

		_, err := srv.CompleteOnboarding(ctx, explorerSession(), &usecase.CompleteOnboardingInput{FullName: "Ana", Role: entity.RoleExplorer})
		require.Error(t, err)
		assert.Equal(t, domainerrors.CodeDatabaseExecute, domainerrors.Resolve(err).ErrorCode())
	})
}

func TestUserService_Me(t *testing.T) {
	srv, m := newUserServiceForTest(t)
	ctx := context.Background()

	m.userRepo.EXPECT().FindByExternalAuthID(ctx, "user_explorer").Return(nil, repository.ErrUserNotFound)

	user, err := srv.Me(ctx, explorerSession())
	assert.Nil(t, user)
	require.ErrorIs(t, err, domainerrors.ErrOnboardingIncomplete)
	assert.Equal(t, "user not found, complete onboarding", domainerrors.Resolve(err).Message())
}
