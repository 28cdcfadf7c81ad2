package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "placeswipe/internal/delivery/context"
	"placeswipe/internal/domain/entity"
	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/domain/repository"
	"placeswipe/internal/domain/service"
	"placeswipe/internal/errors"
	"placeswipe/internal/usecase"

	"go.uber.org/fx"
)

type businessService struct {
	accessGuard

	placeRepo repository.PlaceRepository
	storage   service.ObjectStorage
	qrService service.QRCodeService
	logger    *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	PlaceRepo repository.PlaceRepository
	Storage   service.ObjectStorage
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewBusinessService creates a new business service instance
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		accessGuard: accessGuard{userRepo: params.UserRepo},
		placeRepo:   params.PlaceRepo,
		storage:     params.Storage,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *businessService) CreatePlace(ctx context.Context, session *entity.AuthSession, input *usecase.CreatePlaceInput) (*entity.Place, error) {
	owner, err := srv.resolve(ctx, session, entity.RoleBusiness)
	if err != nil {
		return nil, err
	}

	if input.Coordinates != nil && !input.Coordinates.Valid() {
		return nil, validationError("coordinates out of range")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, validationError("name must not be blank")
	}

	place, err := srv.placeRepo.Create(ctx, &repository.CreatePlaceParams{
		BusinessID:  owner.ID,
		Name:        name,
		Description: input.Description,
		Coordinates: input.Coordinates,
		Address:     input.Address,
		Tag:         normalizeTag(input.Tag),
		ImageURLs:   input.ImageURLs,
	})
	if err != nil {
		return nil, databaseError(err, "failed to create place")
	}

	srv.log(ctx).Info("Place created", slog.Int64("placeID", place.ID), slog.Int64("businessID", owner.ID))

	return place, nil
}

func (srv *businessService) ListMyPlaces(ctx context.Context, session *entity.AuthSession) ([]*entity.Place, error) {
	owner, err := srv.resolve(ctx, session, entity.RoleBusiness)
	if err != nil {
		return nil, err
	}

	places, err := srv.placeRepo.FindByBusinessID(ctx, owner.ID)
	if err != nil {
		return nil, databaseError(err, "failed to list places")
	}

	return places, nil
}

func (srv *businessService) GetPlace(ctx context.Context, session *entity.AuthSession, placeID int64) (*entity.Place, error) {
	owner, err := srv.resolve(ctx, session, entity.RoleBusiness)
	if err != nil {
		return nil, err
	}

	place, err := ownedPlace(ctx, srv.placeRepo, owner, placeID)
	if err != nil {
		return nil, err
	}

	tags, err := srv.placeRepo.FindTags(ctx, place.ID)
	if err != nil {
		return nil, databaseError(err, "failed to find place tags")
	}
	place.Tags = tags

	return place, nil
}

// UpdatePlace applies a partial update. When the gallery is replaced, objects
// of images that are no longer referenced are deleted best effort.
func (srv *businessService) UpdatePlace(ctx context.Context, session *entity.AuthSession, input *usecase.UpdatePlaceInput) (*entity.Place, error) {
	owner, err := srv.resolve(ctx, session, entity.RoleBusiness)
	if err != nil {
		return nil, err
	}

	current, err := ownedPlace(ctx, srv.placeRepo, owner, input.PlaceID)
	if err != nil {
		return nil, err
	}

	if input.Coordinates.Value != nil && !input.Coordinates.Value.Valid() {
		return nil, validationError("coordinates out of range")
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, validationError("name must not be blank")
	}

	params := &repository.UpdatePlaceParams{
		Name:           trimmed(input.Name),
		Description:    input.Description,
		Address:        input.Address,
		CoordinatesSet: input.Coordinates.Set,
		Coordinates:    input.Coordinates.Value,
		ReplaceImages:  input.ImageURLs != nil,
		ImageURLs:      input.ImageURLs,
	}

	place, err := srv.placeRepo.Update(ctx, current.ID, params)
	if err != nil {
		return nil, databaseError(err, "failed to update place")
	}
	if place == nil {
		return nil, domainerrors.ErrPlaceNotFound
	}

	if params.ReplaceImages {
		deleteObjects(ctx, srv.storage, srv.logger, droppedKeys(current.Images, params.ImageURLs)...)
	}

	return place, nil
}

// DeletePlace removes the row first; a storage failure never undoes it.
func (srv *businessService) DeletePlace(ctx context.Context, session *entity.AuthSession, placeID int64) (*entity.Place, error) {
	owner, err := srv.resolve(ctx, session, entity.RoleBusiness)
	if err != nil {
		return nil, err
	}

	if _, err := ownedPlace(ctx, srv.placeRepo, owner, placeID); err != nil {
		return nil, err
	}

	deleted, err := srv.placeRepo.Delete(ctx, placeID)
	if err != nil {
		return nil, databaseError(err, "failed to delete place")
	}
	if deleted == nil {
		return nil, domainerrors.ErrPlaceNotFound
	}

	failures := deleteObjects(ctx, srv.storage, srv.logger, storageKeys(deleted.Images)...)

	srv.log(ctx).Info("Place deleted",
		slog.Int64("placeID", deleted.ID),
		slog.Int("images", len(deleted.Images)),
		slog.Int("storage_failures", failures),
	)

	return deleted, nil
}

func (srv *businessService) PlaceQRCode(ctx context.Context, session *entity.AuthSession, placeID int64) ([]byte, error) {
	owner, err := srv.resolve(ctx, session, entity.RoleBusiness)
	if err != nil {
		return nil, err
	}

	place, err := ownedPlace(ctx, srv.placeRepo, owner, placeID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GeneratePlaceShareQR(place.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate place QR code")
	}

	return png, nil
}

func (srv *businessService) ListTags(ctx context.Context, session *entity.AuthSession) ([]*entity.Tag, error) {
	if err := authenticate(session, ""); err != nil {
		return nil, err
	}

	tags, err := srv.placeRepo.ListTags(ctx)
	if err != nil {
		return nil, databaseError(err, "failed to list tags")
	}

	return tags, nil
}

// normalizeTag trims a tag name and drops blank ones.
func normalizeTag(tag *string) *string {
	if tag == nil {
		return nil
	}

	name := strings.ToLower(strings.TrimSpace(*tag))
	if name == "" {
		return nil
	}

	return &name
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}

	v := strings.TrimSpace(*s)

	return &v
}

// droppedKeys returns the storage keys of images whose URL is not kept.
func droppedKeys(previous []*entity.PlaceImage, keptURLs []string) []string {
	kept := make(map[string]struct{}, len(keptURLs))
	for _, url := range keptURLs {
		kept[url] = struct{}{}
	}

	var dropped []*entity.PlaceImage
	for _, image := range previous {
		if _, ok := kept[image.URL]; !ok {
			dropped = append(dropped, image)
		}
	}

	return storageKeys(dropped)
}
