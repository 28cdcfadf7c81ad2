package repository

import (
	"context"

	"placeswipe/internal/domain/entity"
)

// UpsertSwipeParams is the input of SwipeRepository.Upsert.
type UpsertSwipeParams struct {
	UserID    int64
	PlaceID   int64
	Direction entity.SwipeDirection
}

// SwipeRepository records swipes and answers saved/recommendation queries.
type SwipeRepository interface {
	// Upsert inserts the swipe or overwrites the direction of the existing (user, place) row.
	Upsert(ctx context.Context, params *UpsertSwipeParams) (*entity.Swipe, error)

	// FindSavedByUserID returns right swipes, most recent first.
	FindSavedByUserID(ctx context.Context, userID int64) ([]*entity.SavedPlace, error)

	// Delete removes the (user, place) swipe and reports whether a row existed.
	Delete(ctx context.Context, userID, placeID int64) (bool, error)

	// FindRecommendedForUser returns places the user has not saved, ordered by id.
	FindRecommendedForUser(ctx context.Context, userID int64) ([]*entity.Place, error)

	// FindRecommendedWithDistance returns unsaved places within radiusKm of
	// (lat, lon), nearest first, each with its distance in kilometers.
	FindRecommendedWithDistance(ctx context.Context, userID int64, lat, lon, radiusKm float64) ([]*entity.RecommendedPlace, error)
}
