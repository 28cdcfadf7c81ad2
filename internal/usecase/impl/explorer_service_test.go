package impl

import (
	"context"
	"testing"

	"placeswipe/internal/domain/entity"
	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/domain/repository"
	mockRepo "placeswipe/internal/mocks/repository"
	mockSvc "placeswipe/internal/mocks/service"
	"placeswipe/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type explorerServiceMocks struct {
	userRepo  *mockRepo.MockUserRepository
	placeRepo *mockRepo.MockPlaceRepository
	swipeRepo *mockRepo.MockSwipeRepository
	prefRepo  *mockRepo.MockLocationPreferenceRepository
	geocoder  *mockSvc.MockReverseGeocoder
}

var explorerUser = &entity.User{ID: 1, ExternalAuthID: "user_explorer", Role: entity.RoleExplorer}

func newExplorerServiceForTest(t *testing.T) (usecase.ExplorerUsecase, *explorerServiceMocks) {
	t.Helper()

	m := &explorerServiceMocks{
		userRepo:  mockRepo.NewMockUserRepository(t),
		placeRepo: mockRepo.NewMockPlaceRepository(t),
		swipeRepo: mockRepo.NewMockSwipeRepository(t),
		prefRepo:  mockRepo.NewMockLocationPreferenceRepository(t),
		geocoder:  mockSvc.NewMockReverseGeocoder(t),
	}

	srv := NewExplorerService(ExplorerServiceParams{
		UserRepo:       m.userRepo,
		PlaceRepo:      m.placeRepo,
		SwipeRepo:      m.swipeRepo,
		PreferenceRepo: m.prefRepo,
		Geocoder:       m.geocoder,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return srv, m
}

func (m *explorerServiceMocks) expectExplorer(ctx context.Context) {
	m.userRepo.EXPECT().FindByExternalAuthID(ctx, "user_explorer").Return(explorerUser, nil)
}

func TestExplorerService_RequiresExplorerRole(t *testing.T) {
	srv, _ := newExplorerServiceForTest(t)
	ctx := context.Background()

	_, err := srv.Swipe(ctx, businessSession(), &usecase.SwipeInput{PlaceID: 1, Direction: entity.SwipeRight})
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = srv.GetSavedPlaces(ctx, nil)
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = srv.GetRecommended(ctx, &entity.AuthSession{IsAuthenticated: true, UserID: "user_x"})
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestExplorerService_Swipe(t *testing.T) {
	srv, m := newExplorerServiceForTest(t)
	ctx := context.Background()

	m.expectExplorer(ctx)
	m.placeRepo.EXPECT().FindByID(ctx, int64(42)).Return(&entity.Place{ID: 42, BusinessID: 5}, nil)
	m.swipeRepo.EXPECT().
		Upsert(ctx, &repository.UpsertSwipeParams{UserID: 1, PlaceID: 42, Direction: entity.SwipeRight}).
		Return(&entity.Swipe{ID: 3, UserID: 1, PlaceID: 42, Direction: entity.SwipeRight}, nil)

	swipe, err := srv.Swipe(ctx, explorerSession(), &usecase.SwipeInput{PlaceID: 42, Direction: entity.SwipeRight})
	require.NoError(t, err)
	assert.Equal(t, entity.SwipeRight, swipe.Direction)
}

func TestExplorerService_Swipe_UnknownPlace(t *testing.T) {
	srv, m := newExplorerServiceForTest(t)
	ctx := context.Background()

	m.expectExplorer(ctx)
	m.placeRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, nil)

	_, err := srv.Swipe(ctx, explorerSession(), &usecase.SwipeInput{PlaceID: 404, Direction: entity.SwipeLeft})
	require.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestExplorerService_UnsavePlace(t *testing.T) {
	srv, m := newExplorerServiceForTest(t)
	ctx := context.Background()

	m.userRepo.EXPECT().FindByExternalAuthID(ctx, "user_explorer").Return(explorerUser, nil).Times(2)
	m.swipeRepo.EXPECT().Delete(ctx, int64(1), int64(42)).Return(true, nil).Once()
	m.swipeRepo.EXPECT().Delete(ctx, int64(1), int64(42)).Return(false, nil).Once()

	removed, err := srv.UnsavePlace(ctx, explorerSession(), 42)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = srv.UnsavePlace(ctx, explorerSession(), 42)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestExplorerService_GetRecommended_WithLocation(t *testing.T) {
	srv, m := newExplorerServiceForTest(t)
	ctx := context.Background()
	origin := entity.NewCoordinates(38.7223, -9.1393)
	distance := 1.25
	nearby := []*entity.RecommendedPlace{{Place: &entity.Place{ID: 8}, DistanceKm: &distance}}

	m.expectExplorer(ctx)
	m.prefRepo.EXPECT().FindByUserID(ctx, int64(1)).
		Return(&entity.LocationPreference{UserID: 1, Coordinates: &origin, SearchRadiusKm: 10}, nil)
	m.swipeRepo.EXPECT().FindRecommendedWithDistance(ctx, int64(1), 38.7223, -9.1393, 10.0).Return(nearby, nil)

	places, err := srv.GetRecommended(ctx, explorerSession())
	require.NoError(t, err)
	assert.Equal(t, nearby, places)
}

func TestExplorerService_GetRecommended_FallbackHasNullDistance(t *testing.T) {
	tests := []struct {
		name string
		pref *entity.LocationPreference
	}{
		{name: "no preference", pref: nil},
		{name: "preference without origin", pref: &entity.LocationPreference{UserID: 1, SearchRadiusKm: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newExplorerServiceForTest(t)
			ctx := context.Background()

			m.expectExplorer(ctx)
			m.prefRepo.EXPECT().FindByUserID(ctx, int64(1)).Return(tt.pref, nil)
			m.swipeRepo.EXPECT().FindRecommendedForUser(ctx, int64(1)).
				Return([]*entity.Place{{ID: 1}, {ID: 2}}, nil)

			places, err := srv.GetRecommended(ctx, explorerSession())
			require.NoError(t, err)
			require.Len(t, places, 2)
			for _, place := range places {
				assert.Nil(t, place.DistanceKm)
			}
			assert.Equal(t, int64(1), places[0].ID)
			assert.Equal(t, int64(2), places[1].ID)
		})
	}
}

func TestExplorerService_GetRecommended_DatabaseError(t *testing.T) {
	srv, m := newExplorerServiceForTest(t)
	ctx := context.Background()

	m.expectExplorer(ctx)
	m.prefRepo.EXPECT().FindByUserID(ctx, int64(1)).Return(nil, errors.New("timeout"))

	_, err := srv.GetRecommended(ctx, explorerSession())
	require.Error(t, err)
	assert.Equal(t, domainerrors.CodeDatabaseExecute, domainerrors.Resolve(err).ErrorCode())
}

func TestExplorerService_GetLocationPreference_Default(t *testing.T) {
	srv, m := newExplorerServiceForTest(t)
	ctx := context.Background()

	m.expectExplorer(ctx)
	m.prefRepo.EXPECT().FindByUserID(ctx, int64(1)).Return(nil, nil)

	pref, err := srv.GetLocationPreference(ctx, explorerSession())
	require.NoError(t, err)
	assert.Equal(t, &entity.LocationPreference{UserID: 1, SearchRadiusKm: 5}, pref)
	assert.False(t, pref.HasLocation())
}

func TestExplorerService_UpdateLocationPreference(t *testing.T) {
	srv, m := newExplorerServiceForTest(t)
	ctx := context.Background()
	origin := entity.NewCoordinates(38.7, -9.1)

	m.expectExplorer(ctx)
	m.prefRepo.EXPECT().
		Upsert(ctx, &entity.LocationPreference{UserID: 1, Coordinates: &origin, SearchRadiusKm: 25}).
		Return(&entity.LocationPreference{ID: 2, UserID: 1, Coordinates: &origin, SearchRadiusKm: 25}, nil)

	pref, err := srv.UpdateLocationPreference(ctx, explorerSession(), &usecase.UpdateLocationPreferenceInput{
		Latitude:  ptr(38.7),
		Longitude: ptr(-9.1),
		RadiusKm:  25,
	})
	require.NoError(t, err)
	assert.Equal(t, &origin, pref.Coordinates)
}

func TestExplorerService_UpdateLocationPreference_ClearsOrigin(t *testing.T) {
	srv, m := newExplorerServiceForTest(t)
	ctx := context.Background()

	m.expectExplorer(ctx)
	m.prefRepo.EXPECT().
		Upsert(ctx, &entity.LocationPreference{UserID: 1, SearchRadiusKm: 5}).
		Return(&entity.LocationPreference{ID: 2, UserID: 1, SearchRadiusKm: 5}, nil)

	pref, err := srv.UpdateLocationPreference(ctx, explorerSession(), &usecase.UpdateLocationPreferenceInput{RadiusKm: 5})
	require.NoError(t, err)
	assert.Nil(t, pref.Coordinates)
}

func TestExplorerService_UpdateLocationPreference_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.UpdateLocationPreferenceInput
	}{
		{name: "radius above max", input: &usecase.UpdateLocationPreferenceInput{RadiusKm: 100.5}},
		{name: "zero radius", input: &usecase.UpdateLocationPreferenceInput{RadiusKm: 0}},
		{name: "negative radius", input: &usecase.UpdateLocationPreferenceInput{RadiusKm: -1}},
		{name: "latitude only", input: &usecase.UpdateLocationPreferenceInput{Latitude: ptr(1.0), RadiusKm: 5}},
		{name: "out of range", input: &usecase.UpdateLocationPreferenceInput{Latitude: ptr(91.0), Longitude: ptr(0.0), RadiusKm: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newExplorerServiceForTest(t)
			ctx := context.Background()
			m.expectExplorer(ctx)

			_, err := srv.UpdateLocationPreference(ctx, explorerSession(), tt.input)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestExplorerService_ReverseGeocode(t *testing.T) {
	srv, m := newExplorerServiceForTest(t)
	ctx := context.Background()

	m.userRepo.EXPECT().FindByExternalAuthID(ctx, "user_explorer").Return(explorerUser, nil).Times(2)
	m.geocoder.EXPECT().Locality(ctx, orb.Point{-9.1393, 38.7223}).Return("Lisbon, PT", nil).Once()
	m.geocoder.EXPECT().Locality(ctx, orb.Point{0, 0}).Return("", errors.New("dial tcp: i/o timeout")).Once()

	out, err := srv.ReverseGeocode(ctx, explorerSession(), &usecase.ReverseGeocodeInput{Latitude: 38.7223, Longitude: -9.1393})
	require.NoError(t, err)
	assert.Equal(t, "Lisbon, PT", out.Locality)

	_, err = srv.ReverseGeocode(ctx, explorerSession(), &usecase.ReverseGeocodeInput{})
	require.ErrorIs(t, err, domainerrors.ErrGeocodingFailed)
}
