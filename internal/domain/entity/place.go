package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Coordinates is a WGS84 point exposed as a plain pair: X is longitude, Y is latitude.
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewCoordinates builds Coordinates from a latitude/longitude pair.
func NewCoordinates(lat, lon float64) Coordinates {
	return Coordinates{X: lon, Y: lat}
}

// CoordinatesFromPoint converts an orb point (lon, lat order) to Coordinates.
func CoordinatesFromPoint(p orb.Point) Coordinates {
	return Coordinates{X: p.Lon(), Y: p.Lat()}
}

// Point returns the coordinates as an orb point.
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.X, c.Y}
}

// Latitude returns Y.
func (c Coordinates) Latitude() float64 {
	return c.Y
}

// Longitude returns X.
func (c Coordinates) Longitude() float64 {
	return c.X
}

// Valid reports whether the pair lies within WGS84 bounds.
func (c Coordinates) Valid() bool {
	return c.X >= -180 && c.X <= 180 && c.Y >= -90 && c.Y <= 90
}

// Place is a venue owned by a business user.
type Place struct {
	ID          int64         `json:"id"`
	BusinessID  int64         `json:"business_id"` // Owning business user.
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Coordinates *Coordinates  `json:"coordinates"` // Nil when the place has no location.
	Address     *string       `json:"address"`
	Images      []*PlaceImage `json:"images"` // Confirmed images ordered by Order ascending.
	Tags        []*Tag        `json:"tags,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Tag labels places. Names are unique.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
