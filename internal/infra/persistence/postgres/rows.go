package postgres

import (
	"database/sql"
	"time"

	"placeswipe/internal/domain/entity"
	"placeswipe/internal/util"
)

// placeRow is a places row with its geometry split into coord_x/coord_y.
type placeRow struct {
	ID          int64
	BusinessID  int64
	Name        string
	Description *string
	Address     *string
	CoordX      sql.NullFloat64
	CoordY      sql.NullFloat64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r placeRow) toDomain() *entity.Place {
	return &entity.Place{
		ID:          r.ID,
		BusinessID:  r.BusinessID,
		Name:        r.Name,
		Description: r.Description,
		Coordinates: decodePoint(r.CoordX, r.CoordY),
		Address:     r.Address,
		Images:      []*entity.PlaceImage{},
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// placeImageRow is one row of places LEFT JOIN place_images. The image_*
// columns are all NULL for a place without confirmed images.
type placeImageRow struct {
	Place      placeRow `gorm:"embedded"`
	ImageID    sql.NullInt64
	ImageURL   sql.NullString
	ImageOrder sql.NullInt64
}

func (r placeImageRow) placeKey() int64 {
	return r.Place.ID
}

func (r placeImageRow) joinedImage() (*entity.PlaceImage, bool) {
	if !r.ImageID.Valid || !r.ImageURL.Valid {
		return nil, false
	}

	return &entity.PlaceImage{
		ID:      r.ImageID.Int64,
		PlaceID: r.Place.ID,
		URL:     r.ImageURL.String,
		Order:   int(r.ImageOrder.Int64),
		Status:  entity.ImageStatusConfirmed,
	}, true
}

// savedPlaceRow adds the right swipe that saved the place.
type savedPlaceRow struct {
	Row     placeImageRow `gorm:"embedded"`
	SwipeID int64
	SavedAt time.Time
}

func (r savedPlaceRow) placeKey() int64 { return r.Row.placeKey() }

func (r savedPlaceRow) joinedImage() (*entity.PlaceImage, bool) { return r.Row.joinedImage() }

// distancePlaceRow adds the distance to the caller in kilometers.
type distancePlaceRow struct {
	Row        placeImageRow `gorm:"embedded"`
	DistanceKm float64
}

func (r distancePlaceRow) placeKey() int64 { return r.Row.placeKey() }

func (r distancePlaceRow) joinedImage() (*entity.PlaceImage, bool) { return r.Row.joinedImage() }

type joinedImageRow interface {
	placeKey() int64
	joinedImage() (*entity.PlaceImage, bool)
}

// aggregatePlacesWithImages collapses LEFT JOIN fan-out back into one group
// per place, in first-seen order, with images in row order.
func aggregatePlacesWithImages[R joinedImageRow](rows []R) []util.Group[R, *entity.PlaceImage] {
	return util.GroupBy(rows,
		func(r R) int64 { return r.placeKey() },
		func(r R) R { return r },
		func(r R) (*entity.PlaceImage, bool) { return r.joinedImage() },
	)
}

func toPlacesWithImages(rows []placeImageRow) []*entity.Place {
	groups := aggregatePlacesWithImages(rows)
	places := make([]*entity.Place, 0, len(groups))
	for _, g := range groups {
		place := g.Parent.Place.toDomain()
		place.Images = g.Children
		places = append(places, place)
	}

	return places
}

func toSavedPlaces(rows []savedPlaceRow) []*entity.SavedPlace {
	groups := aggregatePlacesWithImages(rows)
	saved := make([]*entity.SavedPlace, 0, len(groups))
	for _, g := range groups {
		place := g.Parent.Row.Place.toDomain()
		place.Images = g.Children
		saved = append(saved, &entity.SavedPlace{
			SwipeID: g.Parent.SwipeID,
			SavedAt: g.Parent.SavedAt,
			Place:   place,
		})
	}

	return saved
}

func toRecommendedPlaces(rows []distancePlaceRow) []*entity.RecommendedPlace {
	groups := aggregatePlacesWithImages(rows)
	recommended := make([]*entity.RecommendedPlace, 0, len(groups))
	for _, g := range groups {
		place := g.Parent.Row.Place.toDomain()
		place.Images = g.Children
		distance := g.Parent.DistanceKm
		recommended = append(recommended, &entity.RecommendedPlace{
			Place:      place,
			DistanceKm: &distance,
		})
	}

	return recommended
}

// attachImages zips places with images grouped by place id. Images must be
// pre-sorted by display order.
func attachImages(places []*entity.Place, images []*entity.PlaceImage) {
	byPlace := make(map[int64][]*entity.PlaceImage, len(places))
	for _, img := range images {
		byPlace[img.PlaceID] = append(byPlace[img.PlaceID], img)
	}

	for _, p := range places {
		if imgs, ok := byPlace[p.ID]; ok {
			p.Images = imgs
		} else {
			p.Images = []*entity.PlaceImage{}
		}
	}
}
