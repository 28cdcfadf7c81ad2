package repository

import (
	"context"
	"time"

	"placeswipe/internal/domain/entity"
)

// ImageOrder assigns a display position to an image.
type ImageOrder struct {
	ID    int64
	Order int
}

// ImageRepository manages the upload handshake and gallery order of place images.
type ImageRepository interface {
	// CreatePending inserts a pending image ordered behind every confirmed one.
	CreatePending(ctx context.Context, placeID int64, url, storageKey string) (*entity.PlaceImage, error)

	// Confirm moves a pending image to confirmed at order. An image that is
	// already confirmed comes back unchanged. Returns nil, nil when the image is gone.
	Confirm(ctx context.Context, imageID int64, order int) (*entity.PlaceImage, error)

	// FindByID returns the image in any status, or nil, nil.
	FindByID(ctx context.Context, imageID int64) (*entity.PlaceImage, error)

	// FindByPlaceID returns confirmed images ordered by order ascending.
	FindByPlaceID(ctx context.Context, placeID int64) ([]*entity.PlaceImage, error)

	// Reorder applies every order scoped to placeID atomically. Ids from other
	// places are ignored. Returns the refreshed confirmed list.
	Reorder(ctx context.Context, placeID int64, orders []ImageOrder) ([]*entity.PlaceImage, error)

	// FindStalePending returns pending images created before olderThan.
	FindStalePending(ctx context.Context, olderThan time.Time) ([]*entity.PlaceImage, error)

	// GetNextOrder returns max(order)+1 over confirmed images, or 0.
	GetNextOrder(ctx context.Context, placeID int64) (int, error)

	// Delete removes one image and returns it, or nil, nil when absent.
	Delete(ctx context.Context, imageID int64) (*entity.PlaceImage, error)

	// DeleteMany removes those of the given ids that are still pending and were
	// created before olderThan, and returns the removed rows.
	DeleteMany(ctx context.Context, imageIDs []int64, olderThan time.Time) ([]*entity.PlaceImage, error)
}
