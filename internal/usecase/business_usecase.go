package usecase

import (
	"bytes"
	"context"
	"encoding/json"

	"placeswipe/internal/domain/entity"
)

// CreatePlaceInput represents the input for creating a place
type CreatePlaceInput struct {
	Name        string              `json:"name" validate:"required,min=1,max=200"`
	Description *string             `json:"description,omitempty" validate:"omitempty,max=2000"`
	Coordinates *entity.Coordinates `json:"coordinates,omitempty"`
	Address     *string             `json:"address,omitempty" validate:"omitempty,max=500"`
	Tag         *string             `json:"tag,omitempty" validate:"omitempty,min=1,max=50"`
	ImageURLs   []string            `json:"image_urls,omitempty" validate:"omitempty,max=20,dive,url"`
}

// OptionalCoordinates tells an absent "coordinates" key apart from an
// explicit null.
type OptionalCoordinates struct {
	Set   bool
	Value *entity.Coordinates
}

// UnmarshalJSON is only invoked when the key is present.
func (o *OptionalCoordinates) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil

		return nil
	}

	var c entity.Coordinates
	if err := json.Unmarshal(data, &c); err != nil {
		return err //nolint:wrapcheck // surfaced as a decode error
	}
	o.Value = &c

	return nil
}

// UpdatePlaceInput represents a partial place update. Nil fields are left
// untouched; a non-nil ImageURLs replaces the whole gallery.
type UpdatePlaceInput struct {
	PlaceID     int64               `json:"place_id" validate:"required,gt=0"`
	Name        *string             `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string             `json:"description,omitempty" validate:"omitempty,max=2000"`
	Address     *string             `json:"address,omitempty" validate:"omitempty,max=500"`
	Coordinates OptionalCoordinates `json:"coordinates"`
	ImageURLs   []string            `json:"image_urls,omitempty" validate:"omitempty,max=20,dive,url"`
}

// BusinessUsecase defines place management for business users. Places owned
// by someone else behave as if they did not exist.
type BusinessUsecase interface {
	CreatePlace(ctx context.Context, session *entity.AuthSession, input *CreatePlaceInput) (*entity.Place, error)
	ListMyPlaces(ctx context.Context, session *entity.AuthSession) ([]*entity.Place, error)
	// GetPlace returns the place with its tags.
	GetPlace(ctx context.Context, session *entity.AuthSession, placeID int64) (*entity.Place, error)
	UpdatePlace(ctx context.Context, session *entity.AuthSession, input *UpdatePlaceInput) (*entity.Place, error)
	// DeletePlace removes the place and then, best effort, its stored image objects.
	DeletePlace(ctx context.Context, session *entity.AuthSession, placeID int64) (*entity.Place, error)
	// PlaceQRCode renders a PNG QR code linking to the place.
	PlaceQRCode(ctx context.Context, session *entity.AuthSession, placeID int64) ([]byte, error)
	// ListTags is open to any signed-in caller.
	ListTags(ctx context.Context, session *entity.AuthSession) ([]*entity.Tag, error)
}
