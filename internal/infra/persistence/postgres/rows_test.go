package postgres

import (
	"database/sql"
	"testing"
	"time"

	"placeswipe/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlaceRow(id int64, name string) placeRow {
	return placeRow{
		ID:         id,
		BusinessID: 1,
		Name:       name,
		CoordX:     sql.NullFloat64{Float64: -9.14, Valid: true},
		CoordY:     sql.NullFloat64{Float64: 38.72, Valid: true},
	}
}

func withImage(place placeRow, imageID int64, url string, order int64) placeImageRow {
	return placeImageRow{
		Place:      place,
		ImageID:    sql.NullInt64{Int64: imageID, Valid: true},
		ImageURL:   sql.NullString{String: url, Valid: true},
		ImageOrder: sql.NullInt64{Int64: order, Valid: true},
	}
}

func withoutImage(place placeRow) placeImageRow {
	return placeImageRow{Place: place}
}

func TestToPlacesWithImages_CollapsesFanOut(t *testing.T) {
	a := newPlaceRow(10, "a")
	b := newPlaceRow(4, "b")
	c := newPlaceRow(7, "c")

	places := toPlacesWithImages([]placeImageRow{
		withImage(a, 100, "https://img/a0", 0),
		withImage(a, 101, "https://img/a1", 1),
		withoutImage(b),
		withImage(c, 300, "https://img/c0", 0),
	})

	require.Len(t, places, 3)
	assert.Equal(t, []int64{10, 4, 7}, []int64{places[0].ID, places[1].ID, places[2].ID})

	require.Len(t, places[0].Images, 2)
	assert.Equal(t, "https://img/a0", places[0].Images[0].URL)
	assert.Equal(t, "https://img/a1", places[0].Images[1].URL)
	assert.Equal(t, int64(10), places[0].Images[1].PlaceID)

	assert.NotNil(t, places[1].Images)
	assert.Empty(t, places[1].Images)

	assert.Equal(t, &entity.Coordinates{X: -9.14, Y: 38.72}, places[2].Coordinates)
}

func TestToPlacesWithImages_SkipsHalfNullImage(t *testing.T) {
	row := withoutImage(newPlaceRow(1, "a"))
	row.ImageID = sql.NullInt64{Int64: 5, Valid: true}

	places := toPlacesWithImages([]placeImageRow{row})

	require.Len(t, places, 1)
	assert.Empty(t, places[0].Images)
}

func TestToSavedPlaces_KeepsSwipeOrder(t *testing.T) {
	newer := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	p1 := newPlaceRow(1, "one")
	p2 := newPlaceRow(2, "two")

	saved := toSavedPlaces([]savedPlaceRow{
		{Row: withImage(p2, 20, "https://img/2a", 0), SwipeID: 9, SavedAt: newer},
		{Row: withImage(p2, 21, "https://img/2b", 1), SwipeID: 9, SavedAt: newer},
		{Row: withoutImage(p1), SwipeID: 3, SavedAt: older},
	})

	require.Len(t, saved, 2)
	assert.Equal(t, int64(9), saved[0].SwipeID)
	assert.Equal(t, newer, saved[0].SavedAt)
	assert.Equal(t, int64(2), saved[0].Place.ID)
	assert.Len(t, saved[0].Place.Images, 2)
	assert.Equal(t, int64(3), saved[1].SwipeID)
	assert.Empty(t, saved[1].Place.Images)
}

func TestToRecommendedPlaces_CarriesDistance(t *testing.T) {
	near := newPlaceRow(8, "near")
	far := newPlaceRow(3, "far")

	recommended := toRecommendedPlaces([]distancePlaceRow{
		{Row: withImage(near, 1, "https://img/n", 0), DistanceKm: 0.4},
		{Row: withoutImage(far), DistanceKm: 2.5},
	})

	require.Len(t, recommended, 2)
	require.NotNil(t, recommended[0].DistanceKm)
	assert.InDelta(t, 0.4, *recommended[0].DistanceKm, 1e-9)
	assert.InDelta(t, 2.5, *recommended[1].DistanceKm, 1e-9)
	assert.Equal(t, "near", recommended[0].Name)
	assert.Len(t, recommended[0].Images, 1)
}

func TestAttachImages(t *testing.T) {
	places := []*entity.Place{{ID: 1}, {ID: 2}}
	attachImages(places, []*entity.PlaceImage{
		{ID: 11, PlaceID: 1, Order: 0},
		{ID: 12, PlaceID: 1, Order: 1},
	})

	assert.Len(t, places[0].Images, 2)
	assert.Equal(t, int64(12), places[0].Images[1].ID)
	assert.NotNil(t, places[1].Images)
	assert.Empty(t, places[1].Images)
}
