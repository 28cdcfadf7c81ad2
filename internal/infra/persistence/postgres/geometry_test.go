package postgres

import (
	"database/sql"
	"testing"

	"placeswipe/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePoint_RoundTripsThroughEWKB(t *testing.T) {
	c := entity.Coordinates{X: -9.1393, Y: 38.7223}

	expr, err := encodePoint(c)
	require.NoError(t, err)
	assert.Equal(t, "ST_GeomFromEWKB(?)", expr.SQL)
	require.Len(t, expr.Vars, 1)

	data, ok := expr.Vars[0].([]byte)
	require.True(t, ok)

	geom, gotSRID, err := ewkb.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, srid, gotSRID)

	point, ok := geom.(orb.Point)
	require.True(t, ok)
	assert.InDelta(t, c.X, point.Lon(), 1e-12)
	assert.InDelta(t, c.Y, point.Lat(), 1e-12)
}

func TestEncodePoint_RejectsOutOfRange(t *testing.T) {
	_, err := encodePoint(entity.Coordinates{X: 181, Y: 0})
	require.Error(t, err)

	_, err = encodePoint(entity.Coordinates{X: 0, Y: -90.5})
	require.Error(t, err)
}

func TestEncodeOptionalPoint_NilClears(t *testing.T) {
	expr, err := encodeOptionalPoint(nil)
	require.NoError(t, err)
	assert.Equal(t, "NULL", expr.SQL)
	assert.Empty(t, expr.Vars)
}

func TestDecodePoint(t *testing.T) {
	valid := func(v float64) sql.NullFloat64 { return sql.NullFloat64{Float64: v, Valid: true} }

	assert.Nil(t, decodePoint(sql.NullFloat64{}, sql.NullFloat64{}))
	assert.Nil(t, decodePoint(valid(1), sql.NullFloat64{}))
	assert.Equal(t, &entity.Coordinates{X: 2.35, Y: 48.85}, decodePoint(valid(2.35), valid(48.85)))
}

func TestCoordinateColumns(t *testing.T) {
	assert.Equal(t, "ST_X(p.coordinates) AS coord_x, ST_Y(p.coordinates) AS coord_y", coordinateColumns("p"))
}

func TestGeographyPoint_BindsLongitudeFirst(t *testing.T) {
	expr := geographyPoint(38.7, -9.1)
	assert.Equal(t, []any{-9.1, 38.7}, expr.Vars)
}
