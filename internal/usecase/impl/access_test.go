package impl

import (
	"context"
	"testing"

	"placeswipe/internal/domain/entity"
	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/domain/repository"
	mockRepo "placeswipe/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessGuard_Resolve(t *testing.T) {
	ctx := context.Background()
	explorer := &entity.User{ID: 1, ExternalAuthID: "user_explorer", Role: entity.RoleExplorer}

	tests := []struct {
		name     string
		session  *entity.AuthSession
		role     entity.Role
		setup    func(m *mockRepo.MockUserRepository)
		wantUser *entity.User
		wantErr  *domainerrors.BaseError
	}{
		{
			name:    "nil session",
			session: nil,
			role:    entity.RoleExplorer,
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name:    "unauthenticated session",
			session: &entity.AuthSession{UserID: "user_explorer", Role: entity.RoleExplorer},
			role:    entity.RoleExplorer,
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name:    "wrong role",
			session: businessSession(),
			role:    entity.RoleExplorer,
			wantErr: domainerrors.ErrRoleRequired,
		},
		{
			name:    "onboarding incomplete",
			session: explorerSession(),
			role:    entity.RoleExplorer,
			setup: func(m *mockRepo.MockUserRepository) {
				m.EXPECT().FindByExternalAuthID(ctx, "user_explorer").
					Return(nil, errors.Wrap(repository.ErrUserNotFound, "lookup"))
			},
			wantErr: domainerrors.ErrOnboardingIncomplete,
		},
		{
			name:    "any role",
			session: businessSession(),
			role:    "",
			setup: func(m *mockRepo.MockUserRepository) {
				m.EXPECT().FindByExternalAuthID(ctx, "user_business").Return(explorer, nil)
			},
			wantUser: explorer,
		},
		{
			name:    "resolved",
			session: explorerSession(),
			role:    entity.RoleExplorer,
			setup: func(m *mockRepo.MockUserRepository) {
				m.EXPECT().FindByExternalAuthID(ctx, "user_explorer").Return(explorer, nil)
			},
			wantUser: explorer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mockRepo.NewMockUserRepository(t)
			if tt.setup != nil {
				tt.setup(userRepo)
			}

			user, err := accessGuard{userRepo: userRepo}.resolve(ctx, tt.session, tt.role)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Same(t, tt.wantErr, err)
				assert.Nil(t, user)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, user)
		})
	}
}

func TestAccessGuard_ResolveDatabaseError(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByExternalAuthID(ctx, "user_explorer").Return(nil, errors.New("connection refused"))

	_, err := accessGuard{userRepo: userRepo}.resolve(ctx, explorerSession(), entity.RoleExplorer)
	require.Error(t, err)
	assert.Equal(t, domainerrors.CodeDatabaseExecute, domainerrors.Resolve(err).ErrorCode())
}

func TestOwnedPlace(t *testing.T) {
	ctx := context.Background()
	owner := &entity.User{ID: 10}

	placeRepo := mockRepo.NewMockPlaceRepository(t)
	placeRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Place{ID: 1, BusinessID: 10}, nil)
	placeRepo.EXPECT().FindByID(ctx, int64(2)).Return(&entity.Place{ID: 2, BusinessID: 99}, nil)
	placeRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, nil)

	place, err := ownedPlace(ctx, placeRepo, owner, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), place.ID)

	_, err = ownedPlace(ctx, placeRepo, owner, 2)
	assert.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)

	_, err = ownedPlace(ctx, placeRepo, owner, 3)
	assert.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)
}

func TestDroppedKeys(t *testing.T) {
	previous := []*entity.PlaceImage{
		{ID: 1, URL: "https://cdn/a.jpg", StorageKey: ptr("places/1/a.jpg")},
		{ID: 2, URL: "https://cdn/b.jpg", StorageKey: ptr("places/1/b.jpg")},
		{ID: 3, URL: "https://elsewhere/c.jpg"},
	}

	assert.Equal(t, []string{"places/1/b.jpg"}, droppedKeys(previous, []string{"https://cdn/a.jpg"}))
	assert.Empty(t, droppedKeys(previous, []string{"https://cdn/a.jpg", "https://cdn/b.jpg"}))
	assert.Equal(t, []string{"places/1/a.jpg", "places/1/b.jpg"}, droppedKeys(previous, []string{}))
}
