package postgres

import (
	"context"
	"strings"
	"time"

	"placeswipe/internal/domain/entity"
	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/domain/repository"
	"placeswipe/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// placeColumns selects a places row aliased p in placeRow shape.
var placeColumns = "p.id, p.business_id, p.name, p.description, p.address, p.created_at, p.updated_at, " +
	coordinateColumns("p")

type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository returns the GORM place repository.
func NewPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &placeRepository{db: db}
}

// Create inserts the place, its coordinates, tag and images in one transaction
// and returns the place as read back inside it.
func (repo *placeRepository) Create(ctx context.Context, params *repository.CreatePlaceParams) (*entity.Place, error) {
	var created *entity.Place

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		placeM := &model.PlaceModel{
			BusinessID:  params.BusinessID,
			Name:        params.Name,
			Description: params.Description,
			Address:     params.Address,
		}
		if err := tx.Create(placeM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create place")
		}

		if params.Coordinates != nil {
			coords, err := encodePoint(*params.Coordinates)
			if err != nil {
				return err
			}
			if err := tx.Exec("UPDATE places SET coordinates = ? WHERE id = ?", coords, placeM.ID).Error; err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to set place coordinates")
			}
		}

		if params.Tag != nil {
			if err := attachTag(tx, placeM.ID, *params.Tag); err != nil {
				return err
			}
		}

		if err := insertImages(tx, placeM.ID, params.ImageURLs); err != nil {
			return err
		}

		var err error
		created, err = NewPlaceRepository(tx).FindByID(ctx, placeM.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (repo *placeRepository) FindByID(ctx context.Context, id int64) (*entity.Place, error) {
	places, err := repo.findPlaces(ctx, "p.id = ?", id)
	if err != nil {
		return nil, err
	}

	if len(places) == 0 {
		return nil, nil
	}

	return places[0], nil
}

func (repo *placeRepository) FindByBusinessID(ctx context.Context, businessID int64) ([]*entity.Place, error) {
	return repo.findPlaces(ctx, "p.business_id = ?", businessID)
}

// findPlaces runs one query for the places and one for all of their images.
func (repo *placeRepository) findPlaces(ctx context.Context, condition string, arg any) ([]*entity.Place, error) {
	var rows []placeRow
	err := repo.db.WithContext(ctx).
		Table("places AS p").
		Select(placeColumns).
		Where(condition, arg).
		Order("p.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find places")
	}

	places := make([]*entity.Place, 0, len(rows))
	placeIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		places = append(places, row.toDomain())
		placeIDs = append(placeIDs, row.ID)
	}

	if len(placeIDs) == 0 {
		return places, nil
	}

	images, err := findConfirmedImages(ctx, repo.db, placeIDs...)
	if err != nil {
		return nil, err
	}

	attachImages(places, images)

	return places, nil
}

// Update applies params and, when asked, swaps the whole gallery. Returns nil
// when the place does not exist.
func (repo *placeRepository) Update(ctx context.Context, id int64, params *repository.UpdatePlaceParams) (*entity.Place, error) {
	updates, err := buildPlaceUpdates(params, time.Now())
	if err != nil {
		return nil, err
	}

	var updated *entity.Place

	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.PlaceModel{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return domainerrors.NewDatabaseExecuteError(res.Error, "failed to update place")
		}
		if res.RowsAffected == 0 {
			return nil
		}

		// Pending uploads are not part of the gallery yet; the cleanup sweep owns them.
		if params.ReplaceImages {
			err := tx.Where("place_id = ? AND status = ?", id, string(entity.ImageStatusConfirmed)).
				Delete(&model.PlaceImageModel{}).Error
			if err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to clear place images")
			}
			if err := insertImages(tx, id, params.ImageURLs); err != nil {
				return err
			}
		}

		var err error
		updated, err = NewPlaceRepository(tx).FindByID(ctx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// buildPlaceUpdates maps params to column assignments. updated_at is always
// set so the row count tells whether the place exists.
func buildPlaceUpdates(params *repository.UpdatePlaceParams, now time.Time) (map[string]any, error) {
	updates := map[string]any{"updated_at": now}

	if params.Name != nil {
		updates["name"] = *params.Name
	}
	if params.Description != nil {
		updates["description"] = *params.Description
	}
	if params.Address != nil {
		updates["address"] = *params.Address
	}
	if params.CoordinatesSet {
		coords, err := encodeOptionalPoint(params.Coordinates)
		if err != nil {
			return nil, err
		}
		updates["coordinates"] = coords
	}

	return updates, nil
}

// Delete returns the place with every image row it had, so callers can clean
// up stored objects. Images go with the place through ON DELETE CASCADE.
func (repo *placeRepository) Delete(ctx context.Context, id int64) (*entity.Place, error) {
	var deleted *entity.Place

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		place, err := NewPlaceRepository(tx).FindByID(ctx, id)
		if err != nil || place == nil {
			return err
		}

		var imageMs []model.PlaceImageModel
		if err := tx.Where("place_id = ?", id).Order("id ASC").Find(&imageMs).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to load place images")
		}

		res := tx.Where("id = ?", id).Delete(&model.PlaceModel{})
		if res.Error != nil {
			return domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete place")
		}
		if res.RowsAffected == 0 {
			return nil
		}

		place.Images = toImagesDomain(imageMs)
		deleted = place

		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

func (repo *placeRepository) FindTags(ctx context.Context, placeID int64) ([]*entity.Tag, error) {
	var tagMs []model.TagModel
	err := repo.db.WithContext(ctx).
		Table("tags AS t").
		Select("t.id, t.name").
		Joins("JOIN place_tags pt ON pt.tag_id = t.id").
		Where("pt.place_id = ?", placeID).
		Order("t.name ASC").
		Scan(&tagMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find place tags")
	}

	return toTagsDomain(tagMs), nil
}

func (repo *placeRepository) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	var tagMs []model.TagModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&tagMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tags")
	}

	return toTagsDomain(tagMs), nil
}

// attachTag upserts the tag by name and links it. Both steps are idempotent.
func attachTag(tx *gorm.DB, placeID int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	tagM := &model.TagModel{Name: name}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(tagM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert tag")
	}

	link := &model.PlaceTagModel{PlaceID: placeID, TagID: tagM.ID}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(link).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to link tag")
	}

	return nil
}

// insertImages stores urls as confirmed images ordered by slice position.
func insertImages(tx *gorm.DB, placeID int64, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	imageMs := make([]model.PlaceImageModel, 0, len(urls))
	for i, url := range urls {
		imageMs = append(imageMs, model.PlaceImageModel{
			PlaceID: placeID,
			URL:     url,
			Order:   i,
			Status:  string(entity.ImageStatusConfirmed),
		})
	}

	if err := tx.Create(&imageMs).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert place images")
	}

	return nil
}

func toTagsDomain(tagMs []model.TagModel) []*entity.Tag {
	tags := make([]*entity.Tag, 0, len(tagMs))
	for _, t := range tagMs {
		tags = append(tags, &entity.Tag{ID: t.ID, Name: t.Name})
	}

	return tags
}

