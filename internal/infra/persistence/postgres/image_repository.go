package postgres

import (
	"context"
	"time"

	"placeswipe/internal/domain/entity"
	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/domain/repository"
	"placeswipe/internal/infra/persistence/model"
	"placeswipe/internal/infra/persistence/postgres/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// imageDisplayOrder sorts a gallery. id breaks ties between equal orders.
const imageDisplayOrder = `place_id ASC, "order" ASC, id ASC`

type imageRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewImageRepository returns the GORM place image repository.
func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{db: db, q: query.Use(db)}
}

func (repo *imageRepository) CreatePending(ctx context.Context, placeID int64, url, storageKey string) (*entity.PlaceImage, error) {
	imageM := &model.PlaceImageModel{
		PlaceID:    placeID,
		URL:        url,
		StorageKey: &storageKey,
		Order:      entity.PendingImageOrder,
		Status:     string(entity.ImageStatusPending),
	}

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create pending image")
	}

	return toImageDomain(imageM), nil
}

// Confirm only moves pending rows, so a second confirm never reassigns order.
func (repo *imageRepository) Confirm(ctx context.Context, imageID int64, order int) (*entity.PlaceImage, error) {
	img := repo.q.PlaceImageModel
	_, err := img.WithContext(ctx).
		Where(img.ID.Eq(imageID), img.Status.Eq(string(entity.ImageStatusPending))).
		UpdateSimple(
			img.Status.Value(string(entity.ImageStatusConfirmed)),
			img.Order.Value(order),
		)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to confirm image")
	}

	return repo.FindByID(ctx, imageID)
}

func (repo *imageRepository) FindByID(ctx context.Context, imageID int64) (*entity.PlaceImage, error) {
	img := repo.q.PlaceImageModel
	imageMs, err := img.WithContext(ctx).Where(img.ID.Eq(imageID)).Limit(1).Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find image")
	}

	if len(imageMs) == 0 {
		return nil, nil
	}

	return toImageDomain(imageMs[0]), nil
}

func (repo *imageRepository) FindByPlaceID(ctx context.Context, placeID int64) ([]*entity.PlaceImage, error) {
	return findConfirmedImages(ctx, repo.db, placeID)
}

// findConfirmedImages loads confirmed images of the given places in display order.
func findConfirmedImages(ctx context.Context, db *gorm.DB, placeIDs ...int64) ([]*entity.PlaceImage, error) {
	var imageMs []model.PlaceImageModel
	err := db.WithContext(ctx).
		Where("place_id IN ? AND status = ?", placeIDs, string(entity.ImageStatusConfirmed)).
		Order(imageDisplayOrder).
		Find(&imageMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find place images")
	}

	return toImagesDomain(imageMs), nil
}

func (repo *imageRepository) Reorder(ctx context.Context, placeID int64, orders []repository.ImageOrder) ([]*entity.PlaceImage, error) {
	var images []*entity.PlaceImage

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			err := tx.Model(&model.PlaceImageModel{}).
				Where("id = ? AND place_id = ?", o.ID, placeID).
				Update("order", o.Order).Error
			if err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to reorder image")
			}
		}

		var err error
		images, err = findConfirmedImages(ctx, tx, placeID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return images, nil
}

func (repo *imageRepository) FindStalePending(ctx context.Context, olderThan time.Time) ([]*entity.PlaceImage, error) {
	var imageMs []model.PlaceImageModel
	err := repo.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", string(entity.ImageStatusPending), olderThan).
		Order("created_at ASC, id ASC").
		Find(&imageMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find stale pending images")
	}

	return toImagesDomain(imageMs), nil
}

func (repo *imageRepository) GetNextOrder(ctx context.Context, placeID int64) (int, error) {
	var next int
	err := repo.db.WithContext(ctx).
		Model(&model.PlaceImageModel{}).
		Select(`COALESCE(MAX("order") + 1, 0)`).
		Where("place_id = ? AND status = ?", placeID, string(entity.ImageStatusConfirmed)).
		Scan(&next).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to compute next image order")
	}

	return next, nil
}

func (repo *imageRepository) Delete(ctx context.Context, imageID int64) (*entity.PlaceImage, error) {
	image, err := repo.FindByID(ctx, imageID)
	if err != nil || image == nil {
		return nil, err
	}

	img := repo.q.PlaceImageModel
	info, err := img.WithContext(ctx).Where(img.ID.Eq(imageID)).Delete()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete image")
	}
	if info.RowsAffected == 0 {
		return nil, nil
	}

	return image, nil
}

// DeleteMany re-checks status and age in the DELETE itself. An image confirmed
// after it was read as stale survives the sweep.
func (repo *imageRepository) DeleteMany(ctx context.Context, imageIDs []int64, olderThan time.Time) ([]*entity.PlaceImage, error) {
	if len(imageIDs) == 0 {
		return nil, nil
	}

	var imageMs []model.PlaceImageModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id IN ? AND status = ? AND created_at < ?", imageIDs, string(entity.ImageStatusPending), olderThan).
		Delete(&imageMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete images")
	}

	return toImagesDomain(imageMs), nil
}

// --- Mapper Functions ---

func toImageDomain(data *model.PlaceImageModel) *entity.PlaceImage {
	if data == nil {
		return nil
	}

	return &entity.PlaceImage{
		ID:         data.ID,
		PlaceID:    data.PlaceID,
		URL:        data.URL,
		StorageKey: data.StorageKey,
		Order:      data.Order,
		Status:     entity.ImageStatus(data.Status),
		CreatedAt:  data.CreatedAt,
	}
}

func toImagesDomain(imageMs []model.PlaceImageModel) []*entity.PlaceImage {
	images := make([]*entity.PlaceImage, 0, len(imageMs))
	for i := range imageMs {
		images = append(images, toImageDomain(&imageMs[i]))
	}

	return images
}
