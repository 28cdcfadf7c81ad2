// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "placeswipe/internal/delivery/context"
	"placeswipe/internal/domain/entity"
	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/domain/repository"
	"placeswipe/internal/errors"
)

// accessGuard turns a session into the internal user acting on the request.
type accessGuard struct {
	userRepo repository.UserRepository
}

// authenticate checks the session and, when role is set, that it carries role.
func authenticate(session *entity.AuthSession, role entity.Role) error {
	if !session.Authenticated() {
		return domainerrors.ErrUnauthenticated
	}
	if role != "" && !session.HasRole(role) {
		return domainerrors.ErrRoleRequired
	}

	return nil
}

// resolve enforces role and maps the session subject to the internal user.
// A missing user means onboarding never completed.
func (g accessGuard) resolve(ctx context.Context, session *entity.AuthSession, role entity.Role) (*entity.User, error) {
	if err := authenticate(session, role); err != nil {
		return nil, err
	}

	user, err := g.userRepo.FindByExternalAuthID(ctx, session.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrOnboardingIncomplete
	}
	if err != nil {
		return nil, databaseError(err, "failed to resolve session user")
	}

	return user, nil
}

// ownedPlace loads placeID and hides places owned by another business.
func ownedPlace(ctx context.Context, placeRepo repository.PlaceRepository, owner *entity.User, placeID int64) (*entity.Place, error) {
	place, err := placeRepo.FindByID(ctx, placeID)
	if err != nil {
		return nil, databaseError(err, "failed to find place")
	}
	if place == nil || place.BusinessID != owner.ID {
		return nil, domainerrors.ErrPlaceNotFound
	}

	return place, nil
}

// databaseError tags a persistence failure unless it already carries a tag.
func databaseError(err error, details string) error {
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// validationError reports input the payload schema cannot express.
func validationError(details string) error {
	return domainerrors.ErrValidationFailed.WithDetails(details)
}

// deleteObjects removes stored objects best effort. Failures are logged and
// counted, never returned.
func deleteObjects(ctx context.Context, storage objectDeleter, logger *slog.Logger, keys ...string) int {
	failures := 0
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := storage.Delete(ctx, key); err != nil {
			failures++
			deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to delete stored object",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
	}

	return failures
}

type objectDeleter interface {
	Delete(ctx context.Context, key string) error
}

// storageKeys collects the object keys of images stored by this service.
func storageKeys(images []*entity.PlaceImage) []string {
	keys := make([]string, 0, len(images))
	for _, image := range images {
		if image.StorageKey != nil && *image.StorageKey != "" {
			keys = append(keys, *image.StorageKey)
		}
	}

	return keys
}
