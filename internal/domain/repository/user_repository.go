// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"placeswipe/internal/domain/entity"
	"placeswipe/internal/errors"
)

var (
	// ErrUserNotFound is returned when no internal user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when external_auth_id or email is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository persists onboarded users.
type UserRepository interface {
	// FindByID returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByExternalAuthID resolves a session subject to the internal user.
	// Returns ErrUserNotFound when onboarding has not happened yet.
	FindByExternalAuthID(ctx context.Context, externalAuthID string) (*entity.User, error)

	// Create inserts user and fills its ID and timestamps.
	Create(ctx context.Context, user *entity.User) error
}

// LocationPreferenceRepository persists the explorer's search origin, one row per user.
type LocationPreferenceRepository interface {
	// FindByUserID returns nil, nil when the user never saved a preference.
	FindByUserID(ctx context.Context, userID int64) (*entity.LocationPreference, error)

	// Upsert writes the preference for pref.UserID. A nil Coordinates clears the origin.
	Upsert(ctx context.Context, pref *entity.LocationPreference) (*entity.LocationPreference, error)
}
