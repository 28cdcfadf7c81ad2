package service

import (
	"context"

	"github.com/paulmach/orb"
)

// ReverseGeocoder resolves a point to a short human readable locality, e.g. "Lisbon, PT".
type ReverseGeocoder interface {
	Locality(ctx context.Context, point orb.Point) (string, error)
}
