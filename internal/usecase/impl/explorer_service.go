package impl

import (
	"context"
	"fmt"
	"log/slog"

	"placeswipe/config"
	deliverycontext "placeswipe/internal/delivery/context"
	"placeswipe/internal/domain/entity"
	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/domain/repository"
	"placeswipe/internal/domain/service"
	"placeswipe/internal/errors"
	"placeswipe/internal/usecase"

	"go.uber.org/fx"
)

type explorerService struct {
	accessGuard

	placeRepo      repository.PlaceRepository
	swipeRepo      repository.SwipeRepository
	preferenceRepo repository.LocationPreferenceRepository
	geocoder       service.ReverseGeocoder
	radius         config.ExplorerConfig
	logger         *slog.Logger
}

// ExplorerServiceParams holds dependencies for ExplorerService, injected by Fx.
type ExplorerServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	PlaceRepo      repository.PlaceRepository
	SwipeRepo      repository.SwipeRepository
	PreferenceRepo repository.LocationPreferenceRepository
	Geocoder       service.ReverseGeocoder
	Config         *config.Config
	Logger         *slog.Logger
}

// NewExplorerService creates a new explorer service instance
func NewExplorerService(params ExplorerServiceParams) usecase.ExplorerUsecase {
	return &explorerService{
		accessGuard:    accessGuard{userRepo: params.UserRepo},
		placeRepo:      params.PlaceRepo,
		swipeRepo:      params.SwipeRepo,
		preferenceRepo: params.PreferenceRepo,
		geocoder:       params.Geocoder,
		radius:         explorerDefaults(params.Config),
		logger:         params.Logger,
	}
}

func (srv *explorerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Swipe records the explorer's verdict on an existing place.
func (srv *explorerService) Swipe(ctx context.Context, session *entity.AuthSession, input *usecase.SwipeInput) (*entity.Swipe, error) {
	user, err := srv.resolve(ctx, session, entity.RoleExplorer)
	if err != nil {
		return nil, err
	}

	if !input.Direction.IsValid() {
		return nil, validationError("direction must be left or right")
	}

	place, err := srv.placeRepo.FindByID(ctx, input.PlaceID)
	if err != nil {
		return nil, databaseError(err, "failed to find place")
	}
	if place == nil {
		return nil, domainerrors.ErrPlaceNotFound
	}

	swipe, err := srv.swipeRepo.Upsert(ctx, &repository.UpsertSwipeParams{
		UserID:    user.ID,
		PlaceID:   place.ID,
		Direction: input.Direction,
	})
	if err != nil {
		return nil, databaseError(err, "failed to record swipe")
	}

	srv.log(ctx).Debug("Swipe recorded",
		slog.Int64("userID", user.ID),
		slog.Int64("placeID", place.ID),
		slog.String("direction", string(swipe.Direction)),
	)

	return swipe, nil
}

// GetSavedPlaces lists right-swiped places, most recent first.
func (srv *explorerService) GetSavedPlaces(ctx context.Context, session *entity.AuthSession) ([]*entity.SavedPlace, error) {
	user, err := srv.resolve(ctx, session, entity.RoleExplorer)
	if err != nil {
		return nil, err
	}

	saved, err := srv.swipeRepo.FindSavedByUserID(ctx, user.ID)
	if err != nil {
		return nil, databaseError(err, "failed to find saved places")
	}

	return saved, nil
}

func (srv *explorerService) UnsavePlace(ctx context.Context, session *entity.AuthSession, placeID int64) (bool, error) {
	user, err := srv.resolve(ctx, session, entity.RoleExplorer)
	if err != nil {
		return false, err
	}

	removed, err := srv.swipeRepo.Delete(ctx, user.ID, placeID)
	if err != nil {
		return false, databaseError(err, "failed to remove swipe")
	}

	return removed, nil
}

// GetRecommended picks the distance query when the explorer has a search
// origin. Both strategies return the same shape.
func (srv *explorerService) GetRecommended(ctx context.Context, session *entity.AuthSession) ([]*entity.RecommendedPlace, error) {
	user, err := srv.resolve(ctx, session, entity.RoleExplorer)
	if err != nil {
		return nil, err
	}

	pref, err := srv.preferenceRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, databaseError(err, "failed to find location preference")
	}

	if pref.HasLocation() {
		radiusKm := pref.SearchRadiusKm
		if radiusKm <= 0 {
			radiusKm = srv.radius.DefaultRadiusKm
		}

		places, err := srv.swipeRepo.FindRecommendedWithDistance(ctx, user.ID,
			pref.Coordinates.Latitude(), pref.Coordinates.Longitude(), radiusKm)
		if err != nil {
			return nil, databaseError(err, "failed to find nearby recommendations")
		}

		return places, nil
	}

	places, err := srv.swipeRepo.FindRecommendedForUser(ctx, user.ID)
	if err != nil {
		return nil, databaseError(err, "failed to find recommendations")
	}

	recommended := make([]*entity.RecommendedPlace, len(places))
	for i, place := range places {
		recommended[i] = &entity.RecommendedPlace{Place: place}
	}

	return recommended, nil
}

// GetLocationPreference returns the stored preference, or the default radius
// without an origin when none was saved yet.
func (srv *explorerService) GetLocationPreference(ctx context.Context, session *entity.AuthSession) (*entity.LocationPreference, error) {
	user, err := srv.resolve(ctx, session, entity.RoleExplorer)
	if err != nil {
		return nil, err
	}

	pref, err := srv.preferenceRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, databaseError(err, "failed to find location preference")
	}
	if pref == nil {
		return &entity.LocationPreference{UserID: user.ID, SearchRadiusKm: srv.radius.DefaultRadiusKm}, nil
	}

	return pref, nil
}

func (srv *explorerService) UpdateLocationPreference(ctx context.Context, session *entity.AuthSession, input *usecase.UpdateLocationPreferenceInput) (*entity.LocationPreference, error) {
	user, err := srv.resolve(ctx, session, entity.RoleExplorer)
	if err != nil {
		return nil, err
	}

	if input.RadiusKm <= 0 || input.RadiusKm > srv.radius.MaxRadiusKm {
		return nil, validationError(fmt.Sprintf("radius_km must be greater than 0 and at most %g", srv.radius.MaxRadiusKm))
	}

	var coordinates *entity.Coordinates
	switch {
	case input.Latitude != nil && input.Longitude != nil:
		c := entity.NewCoordinates(*input.Latitude, *input.Longitude)
		if !c.Valid() {
			return nil, validationError("coordinates out of range")
		}
		coordinates = &c
	case input.Latitude != nil || input.Longitude != nil:
		return nil, validationError("lat and lon must be provided together")
	}

	pref, err := srv.preferenceRepo.Upsert(ctx, &entity.LocationPreference{
		UserID:         user.ID,
		Coordinates:    coordinates,
		SearchRadiusKm: input.RadiusKm,
	})
	if err != nil {
		return nil, databaseError(err, "failed to save location preference")
	}

	return pref, nil
}

func (srv *explorerService) ReverseGeocode(ctx context.Context, session *entity.AuthSession, input *usecase.ReverseGeocodeInput) (*usecase.ReverseGeocodeOutput, error) {
	if _, err := srv.resolve(ctx, session, entity.RoleExplorer); err != nil {
		return nil, err
	}

	c := entity.NewCoordinates(input.Latitude, input.Longitude)
	if !c.Valid() {
		return nil, validationError("coordinates out of range")
	}

	locality, err := srv.geocoder.Locality(ctx, c.Point())
	if err != nil {
		srv.log(ctx).Warn("Reverse geocoding failed", slog.Any("error", err))

		if _, ok := errors.AsType[domainerrors.AppError](err); ok {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrGeocodingFailed.WithDetails(err.Error()), "reverse geocode")
	}

	return &usecase.ReverseGeocodeOutput{Locality: locality}, nil
}
