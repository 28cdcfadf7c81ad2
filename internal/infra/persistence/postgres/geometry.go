package postgres

import (
	"database/sql"
	"fmt"

	"placeswipe/internal/domain/entity"
	"placeswipe/internal/errors"

	"github.com/paulmach/orb/encoding/ewkb"
	"gorm.io/gorm/clause"
)

// srid is WGS84. Every geometry column in the schema uses it.
const srid = 4326

// nullGeometry clears a geometry column.
var nullGeometry = clause.Expr{SQL: "NULL"}

// encodePoint renders c as a geometry expression bound to EWKB bytes.
func encodePoint(c entity.Coordinates) (clause.Expr, error) {
	if !c.Valid() {
		return clause.Expr{}, errors.Errorf("coordinates out of range: x=%f y=%f", c.X, c.Y)
	}

	data, err := ewkb.Marshal(c.Point(), srid)
	if err != nil {
		return clause.Expr{}, errors.Wrap(err, "failed to encode point")
	}

	return clause.Expr{SQL: "ST_GeomFromEWKB(?)", Vars: []any{data}}, nil
}

// encodeOptionalPoint is encodePoint with nil mapped to NULL.
func encodeOptionalPoint(c *entity.Coordinates) (clause.Expr, error) {
	if c == nil {
		return nullGeometry, nil
	}

	return encodePoint(*c)
}

// decodePoint rebuilds coordinates selected through coordinateColumns.
// Either side being NULL means the row has no location.
func decodePoint(x, y sql.NullFloat64) *entity.Coordinates {
	if !x.Valid || !y.Valid {
		return nil
	}

	return &entity.Coordinates{X: x.Float64, Y: y.Float64}
}

// coordinateColumns selects alias.coordinates as coord_x and coord_y.
func coordinateColumns(alias string) string {
	return fmt.Sprintf("ST_X(%[1]s.coordinates) AS coord_x, ST_Y(%[1]s.coordinates) AS coord_y", alias)
}

// geographyPoint is the caller's position in geography mode, so distance
// functions work in meters.
func geographyPoint(lat, lon float64) clause.Expr {
	return clause.Expr{
		SQL:  "ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography",
		Vars: []any{lon, lat},
	}
}
