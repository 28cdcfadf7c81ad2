package usecase

import (
	"context"

	"placeswipe/internal/domain/entity"
)

// PlaceIDInput identifies a single place
type PlaceIDInput struct {
	PlaceID int64 `json:"place_id" validate:"required,gt=0"`
}

// SwipeInput represents one swipe on a place
type SwipeInput struct {
	PlaceID   int64                 `json:"place_id" validate:"required,gt=0"`
	Direction entity.SwipeDirection `json:"direction" validate:"required,oneof=left right"`
}

// UnsaveOutput reports whether a saved place was removed
type UnsaveOutput struct {
	Removed bool `json:"removed"`
}

// UpdateLocationPreferenceInput sets the explorer's search origin and radius.
// Omitting both Latitude and Longitude clears the origin.
type UpdateLocationPreferenceInput struct {
	Latitude  *float64 `json:"lat" validate:"required_with=Longitude,omitempty,min=-90,max=90"`
	Longitude *float64 `json:"lon" validate:"required_with=Latitude,omitempty,min=-180,max=180"`
	RadiusKm  float64  `json:"radius_km" validate:"required,gt=0"`
}

// ReverseGeocodeInput is a point to resolve to a locality
type ReverseGeocodeInput struct {
	Latitude  float64 `json:"lat" validate:"min=-90,max=90"`
	Longitude float64 `json:"lon" validate:"min=-180,max=180"`
}

// ReverseGeocodeOutput carries a short locality such as "Lisbon, PT"
type ReverseGeocodeOutput struct {
	Locality string `json:"locality"`
}

// ExplorerUsecase defines the swipe and discovery flows of explorer users.
// Every operation requires the explorer role and a completed onboarding.
type ExplorerUsecase interface {
	Swipe(ctx context.Context, session *entity.AuthSession, input *SwipeInput) (*entity.Swipe, error)
	GetSavedPlaces(ctx context.Context, session *entity.AuthSession) ([]*entity.SavedPlace, error)
	// UnsavePlace removes the explorer's swipe on placeID and reports whether one existed.
	UnsavePlace(ctx context.Context, session *entity.AuthSession, placeID int64) (bool, error)
	// GetRecommended returns nearby unsaved places when a search origin is set,
	// otherwise every unsaved place with a nil distance.
	GetRecommended(ctx context.Context, session *entity.AuthSession) ([]*entity.RecommendedPlace, error)
	GetLocationPreference(ctx context.Context, session *entity.AuthSession) (*entity.LocationPreference, error)
	UpdateLocationPreference(ctx context.Context, session *entity.AuthSession, input *UpdateLocationPreferenceInput) (*entity.LocationPreference, error)
	ReverseGeocode(ctx context.Context, session *entity.AuthSession, input *ReverseGeocodeInput) (*ReverseGeocodeOutput, error)
}
