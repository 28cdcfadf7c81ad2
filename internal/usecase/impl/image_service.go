package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"
	"time"

	"placeswipe/config"
	deliverycontext "placeswipe/internal/delivery/context"
	"placeswipe/internal/domain/entity"
	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/domain/repository"
	"placeswipe/internal/domain/service"
	"placeswipe/internal/errors"
	"placeswipe/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultKeyPrefix = "places"

type imageService struct {
	accessGuard

	placeRepo           repository.PlaceRepository
	imageRepo           repository.ImageRepository
	storage             service.ObjectStorage
	keyPrefix           string
	allowedContentTypes []string
	pendingRetention    time.Duration
	now                 func() time.Time
	logger              *slog.Logger
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	PlaceRepo repository.PlaceRepository
	ImageRepo repository.ImageRepository
	Storage   service.ObjectStorage
	Config    *config.Config
	Logger    *slog.Logger
}

// NewImageService creates a new image service instance
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	srv := &imageService{
		accessGuard:      accessGuard{userRepo: params.UserRepo},
		placeRepo:        params.PlaceRepo,
		imageRepo:        params.ImageRepo,
		storage:          params.Storage,
		keyPrefix:        defaultKeyPrefix,
		pendingRetention: time.Hour,
		now:              time.Now,
		logger:           params.Logger,
	}

	if storage := params.Config.Storage; storage != nil {
		if prefix := strings.Trim(storage.KeyPrefix, "/"); prefix != "" {
			srv.keyPrefix = prefix
		}
		srv.allowedContentTypes = storage.AllowedContentTypes
	}
	if uploads := params.Config.Uploads; uploads != nil && uploads.PendingRetention > 0 {
		srv.pendingRetention = uploads.PendingRetention
	}

	return srv
}

func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestUpload presigns first so a storage failure leaves no pending row.
func (srv *imageService) RequestUpload(ctx context.Context, session *entity.AuthSession, input *usecase.RequestUploadInput) (*entity.UploadTicket, error) {
	owner, err := srv.resolve(ctx, session, entity.RoleBusiness)
	if err != nil {
		return nil, err
	}

	place, err := ownedPlace(ctx, srv.placeRepo, owner, input.PlaceID)
	if err != nil {
		return nil, err
	}

	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	if len(srv.allowedContentTypes) > 0 && !slices.Contains(srv.allowedContentTypes, contentType) {
		return nil, validationError(fmt.Sprintf("content type %q is not allowed", input.ContentType))
	}

	key := srv.objectKey(place.ID, input.FileName)

	upload, err := srv.storage.PresignUpload(ctx, key, contentType)
	if err != nil {
		return nil, err //nolint:wrapcheck // already tagged STORAGE_FAILED
	}

	fileURL := srv.storage.PublicURL(key)

	image, err := srv.imageRepo.CreatePending(ctx, place.ID, fileURL, key)
	if err != nil {
		return nil, databaseError(err, "failed to create pending image")
	}

	return &entity.UploadTicket{
		UploadURL: upload.URL,
		FileURL:   fileURL,
		Key:       key,
		ExpiresIn: int(upload.ExpiresIn.Seconds()),
		Image:     image,
	}, nil
}

// objectKey builds "{prefix}/{placeID}/{unix}_{uuid}{ext}".
func (srv *imageService) objectKey(placeID int64, fileName string) string {
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(fileName, "\\", "/"))))
	if len(ext) > 10 || strings.ContainsAny(ext, " ?#%") {
		ext = ""
	}

	return fmt.Sprintf("%s/%d/%d_%s%s", srv.keyPrefix, placeID, srv.now().Unix(), uuid.New().String(), ext)
}

// ownedImage loads imageID and hides images of places owned by someone else.
func (srv *imageService) ownedImage(ctx context.Context, owner *entity.User, imageID int64) (*entity.PlaceImage, error) {
	image, err := srv.imageRepo.FindByID(ctx, imageID)
	if err != nil {
		return nil, databaseError(err, "failed to find image")
	}
	if image == nil {
		return nil, domainerrors.ErrImageNotFound
	}

	if _, err := ownedPlace(ctx, srv.placeRepo, owner, image.PlaceID); err != nil {
		if errors.Is(err, domainerrors.ErrPlaceNotFound) {
			return nil, domainerrors.ErrImageNotFound
		}

		return nil, err
	}

	return image, nil
}

func (srv *imageService) ConfirmUpload(ctx context.Context, session *entity.AuthSession, imageID int64) (*entity.PlaceImage, error) {
	owner, err := srv.resolve(ctx, session, entity.RoleBusiness)
	if err != nil {
		return nil, err
	}

	image, err := srv.ownedImage(ctx, owner, imageID)
	if err != nil {
		return nil, err
	}
	if image.IsConfirmed() {
		return image, nil
	}

	order, err := srv.imageRepo.GetNextOrder(ctx, image.PlaceID)
	if err != nil {
		return nil, databaseError(err, "failed to compute image order")
	}

	confirmed, err := srv.imageRepo.Confirm(ctx, image.ID, order)
	if err != nil {
		return nil, databaseError(err, "failed to confirm image")
	}
	if confirmed == nil {
		return nil, domainerrors.ErrImageNotFound
	}

	return confirmed, nil
}

func (srv *imageService) ReorderImages(ctx context.Context, session *entity.AuthSession, input *usecase.ReorderImagesInput) ([]*entity.PlaceImage, error) {
	owner, err := srv.resolve(ctx, session, entity.RoleBusiness)
	if err != nil {
		return nil, err
	}

	place, err := ownedPlace(ctx, srv.placeRepo, owner, input.PlaceID)
	if err != nil {
		return nil, err
	}

	orders := make([]repository.ImageOrder, len(input.Items))
	for i, item := range input.Items {
		orders[i] = repository.ImageOrder{ID: item.ID, Order: item.Order}
	}

	images, err := srv.imageRepo.Reorder(ctx, place.ID, orders)
	if err != nil {
		return nil, databaseError(err, "failed to reorder images")
	}

	return images, nil
}

// DeleteImage removes the row first; a storage failure never undoes it.
func (srv *imageService) DeleteImage(ctx context.Context, session *entity.AuthSession, imageID int64) (*entity.PlaceImage, error) {
	owner, err := srv.resolve(ctx, session, entity.RoleBusiness)
	if err != nil {
		return nil, err
	}

	if _, err := srv.ownedImage(ctx, owner, imageID); err != nil {
		return nil, err
	}

	deleted, err := srv.imageRepo.Delete(ctx, imageID)
	if err != nil {
		return nil, databaseError(err, "failed to delete image")
	}
	if deleted == nil {
		return nil, domainerrors.ErrImageNotFound
	}

	deleteObjects(ctx, srv.storage, srv.logger, storageKeys([]*entity.PlaceImage{deleted})...)

	return deleted, nil
}

func (srv *imageService) ListImages(ctx context.Context, session *entity.AuthSession, placeID int64) ([]*entity.PlaceImage, error) {
	owner, err := srv.resolve(ctx, session, entity.RoleBusiness)
	if err != nil {
		return nil, err
	}

	place, err := ownedPlace(ctx, srv.placeRepo, owner, placeID)
	if err != nil {
		return nil, err
	}

	images, err := srv.imageRepo.FindByPlaceID(ctx, place.ID)
	if err != nil {
		return nil, databaseError(err, "failed to list images")
	}

	return images, nil
}

// CleanupStaleUploads removes rows first and then the objects of the rows that
// actually went away. An image confirmed mid-sweep keeps both.
func (srv *imageService) CleanupStaleUploads(ctx context.Context, now time.Time) (*usecase.CleanupOutput, error) {
	cutoff := now.Add(-srv.pendingRetention)

	stale, err := srv.imageRepo.FindStalePending(ctx, cutoff)
	if err != nil {
		return nil, databaseError(err, "failed to find stale uploads")
	}

	output := &usecase.CleanupOutput{Found: len(stale)}
	if len(stale) == 0 {
		return output, nil
	}

	ids := make([]int64, len(stale))
	for i, image := range stale {
		ids[i] = image.ID
	}

	removed, err := srv.imageRepo.DeleteMany(ctx, ids, cutoff)
	if err != nil {
		return nil, databaseError(err, "failed to delete stale uploads")
	}

	output.Deleted = int64(len(removed))
	output.StorageFailures = deleteObjects(ctx, srv.storage, srv.logger, storageKeys(removed)...)

	srv.log(ctx).Info("Stale uploads cleaned up",
		slog.Time("cutoff", cutoff),
		slog.Int("found", output.Found),
		slog.Int64("deleted", output.Deleted),
		slog.Int("storage_failures", output.StorageFailures),
	)

	return output, nil
}
