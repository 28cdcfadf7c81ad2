package postgres

import (
	"context"

	"placeswipe/internal/domain/entity"
	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/domain/repository"
	"placeswipe/internal/infra/persistence/model"
	"placeswipe/internal/infra/persistence/postgres/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// placeImageColumns selects places p LEFT JOIN place_images i in placeImageRow shape.
var placeImageColumns = placeColumns + `, i.id AS image_id, i.url AS image_url, i."order" AS image_order`

// confirmedImagesJoin fans each place out over its confirmed images.
const confirmedImagesJoin = `LEFT JOIN place_images i ON i.place_id = p.id AND i.status = 'confirmed'`

// unsavedByUser pairs each place with the caller's right swipe, if any.
// Filtering on s.id IS NULL keeps only places the caller has not saved.
const unsavedByUser = `LEFT JOIN swipes s ON s.place_id = p.id AND s.user_id = ? AND s.direction = 'right'`

var savedPlacesSQL = `SELECT ` + placeImageColumns + `, s.id AS swipe_id, s.created_at AS saved_at
FROM swipes s
INNER JOIN places p ON p.id = s.place_id
` + confirmedImagesJoin + `
WHERE s.user_id = ? AND s.direction = 'right'
ORDER BY s.created_at DESC, s.id DESC, i."order" ASC, i.id ASC`

var recommendedPlacesSQL = `SELECT ` + placeImageColumns + `
FROM places p
` + unsavedByUser + `
` + confirmedImagesJoin + `
WHERE s.id IS NULL
ORDER BY p.id ASC, i."order" ASC, i.id ASC`

// ST_DWithin keeps the geography GIST index usable; ST_Distance gives the exact figure.
var recommendedWithDistanceSQL = `SELECT ` + placeImageColumns + `,
       ST_Distance(p.coordinates::geography, ?) / 1000.0 AS distance_km
FROM places p
` + unsavedByUser + `
` + confirmedImagesJoin + `
WHERE s.id IS NULL
  AND p.coordinates IS NOT NULL
  AND ST_DWithin(p.coordinates::geography, ?, ?)
ORDER BY distance_km ASC, p.id ASC, i."order" ASC, i.id ASC`

type swipeRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewSwipeRepository returns the GORM swipe repository.
func NewSwipeRepository(db *gorm.DB) repository.SwipeRepository {
	return &swipeRepository{db: db, q: query.Use(db)}
}

// Upsert relies on the (user_id, place_id) unique index: the last writer's
// direction wins and the original created_at is kept.
func (repo *swipeRepository) Upsert(ctx context.Context, params *repository.UpsertSwipeParams) (*entity.Swipe, error) {
	swipeM := &model.SwipeModel{
		UserID:    params.UserID,
		PlaceID:   params.PlaceID,
		Direction: string(params.Direction),
	}

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "place_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"direction", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(swipeM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert swipe")
	}

	return toSwipeDomain(swipeM), nil
}

func (repo *swipeRepository) FindSavedByUserID(ctx context.Context, userID int64) ([]*entity.SavedPlace, error) {
	var rows []savedPlaceRow
	if err := repo.read(ctx).Raw(savedPlacesSQL, userID).Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find saved places")
	}

	return toSavedPlaces(rows), nil
}

func (repo *swipeRepository) Delete(ctx context.Context, userID, placeID int64) (bool, error) {
	s := repo.q.SwipeModel
	info, err := s.WithContext(ctx).
		Where(s.UserID.Eq(userID), s.PlaceID.Eq(placeID)).
		Delete()
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to delete swipe")
	}

	return info.RowsAffected > 0, nil
}

func (repo *swipeRepository) FindRecommendedForUser(ctx context.Context, userID int64) ([]*entity.Place, error) {
	var rows []placeImageRow
	if err := repo.read(ctx).Raw(recommendedPlacesSQL, userID).Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find recommended places")
	}

	return toPlacesWithImages(rows), nil
}

func (repo *swipeRepository) FindRecommendedWithDistance(ctx context.Context, userID int64, lat, lon, radiusKm float64) ([]*entity.RecommendedPlace, error) {
	origin := geographyPoint(lat, lon)
	radiusMeters := radiusKm * 1000

	var rows []distancePlaceRow
	err := repo.read(ctx).
		Raw(recommendedWithDistanceSQL, origin, userID, origin, radiusMeters).
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find nearby recommended places")
	}

	return toRecommendedPlaces(rows), nil
}

// read routes a query to a replica when one is configured. Inside a
// transaction dbresolver keeps the transaction's connection.
func (repo *swipeRepository) read(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

// --- Mapper Functions ---

func toSwipeDomain(data *model.SwipeModel) *entity.Swipe {
	if data == nil {
		return nil
	}

	return &entity.Swipe{
		ID:        data.ID,
		UserID:    data.UserID,
		PlaceID:   data.PlaceID,
		Direction: entity.SwipeDirection(data.Direction),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
