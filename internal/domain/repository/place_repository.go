package repository

import (
	"context"

	"placeswipe/internal/domain/entity"
)

// CreatePlaceParams is the input of PlaceRepository.Create.
type CreatePlaceParams struct {
	BusinessID  int64
	Name        string
	Description *string
	Coordinates *entity.Coordinates
	Address     *string
	Tag         *string  // Attached by name, created when missing.
	ImageURLs   []string // Stored as confirmed images in slice order.
}

// UpdatePlaceParams is the input of PlaceRepository.Update. Nil pointers leave
// columns untouched.
type UpdatePlaceParams struct {
	Name        *string
	Description *string
	Address     *string

	// CoordinatesSet distinguishes "leave as is" (false) from "set" (true).
	// With CoordinatesSet true, a nil Coordinates clears the location.
	CoordinatesSet bool
	Coordinates    *entity.Coordinates

	// ReplaceImages replaces the confirmed gallery with ImageURLs. Pending
	// uploads are kept.
	ReplaceImages bool
	ImageURLs     []string
}

// PlaceRepository persists places with their confirmed images.
type PlaceRepository interface {
	// Create inserts the place, its tag link and images atomically.
	Create(ctx context.Context, params *CreatePlaceParams) (*entity.Place, error)

	// FindByID returns nil, nil when no place matches.
	FindByID(ctx context.Context, id int64) (*entity.Place, error)

	// FindByBusinessID lists a business's places ordered by id.
	FindByBusinessID(ctx context.Context, businessID int64) ([]*entity.Place, error)

	// Update applies params atomically and returns the refetched place, or nil when missing.
	Update(ctx context.Context, id int64, params *UpdatePlaceParams) (*entity.Place, error)

	// Delete removes the place and returns it as it was, including every image
	// row regardless of status. Returns nil, nil when no row existed.
	Delete(ctx context.Context, id int64) (*entity.Place, error)

	// FindTags returns the tags attached to a place ordered by name.
	FindTags(ctx context.Context, placeID int64) ([]*entity.Tag, error)

	// ListTags returns every tag ordered by name.
	ListTags(ctx context.Context) ([]*entity.Tag, error)
}
