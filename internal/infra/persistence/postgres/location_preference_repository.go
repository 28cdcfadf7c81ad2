package postgres

import (
	"context"
	"database/sql"
	"time"

	"placeswipe/internal/domain/entity"
	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/domain/repository"
	"placeswipe/internal/errors"

	"gorm.io/gorm"
)

const upsertLocationPreferenceSQL = `INSERT INTO user_location_preferences (user_id, coordinates, search_radius_km, updated_at)
VALUES (?, ?, ?, NOW())
ON CONFLICT (user_id) DO UPDATE
SET coordinates = EXCLUDED.coordinates,
    search_radius_km = EXCLUDED.search_radius_km,
    updated_at = EXCLUDED.updated_at`

type locationPreferenceRow struct {
	ID             int64
	UserID         int64
	SearchRadiusKm float64
	CoordX         sql.NullFloat64
	CoordY         sql.NullFloat64
	UpdatedAt      time.Time
}

type locationPreferenceRepository struct {
	db *gorm.DB
}

// NewLocationPreferenceRepository returns the GORM location preference repository.
func NewLocationPreferenceRepository(db *gorm.DB) repository.LocationPreferenceRepository {
	return &locationPreferenceRepository{db: db}
}

func (repo *locationPreferenceRepository) FindByUserID(ctx context.Context, userID int64) (*entity.LocationPreference, error) {
	var rows []locationPreferenceRow
	err := repo.db.WithContext(ctx).
		Table("user_location_preferences AS l").
		Select("l.id, l.user_id, l.search_radius_km, l.updated_at, " + coordinateColumns("l")).
		Where("l.user_id = ?", userID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find location preference")
	}

	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]

	return &entity.LocationPreference{
		ID:             row.ID,
		UserID:         row.UserID,
		Coordinates:    decodePoint(row.CoordX, row.CoordY),
		SearchRadiusKm: row.SearchRadiusKm,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}

func (repo *locationPreferenceRepository) Upsert(ctx context.Context, pref *entity.LocationPreference) (*entity.LocationPreference, error) {
	coords, err := encodeOptionalPoint(pref.Coordinates)
	if err != nil {
		return nil, errors.Wrap(err, "location preference")
	}

	if err := repo.db.WithContext(ctx).Exec(upsertLocationPreferenceSQL, pref.UserID, coords, pref.SearchRadiusKm).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save location preference")
	}

	return repo.FindByUserID(ctx, pref.UserID)
}
