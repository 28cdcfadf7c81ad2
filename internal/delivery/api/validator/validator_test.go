package validator

import (
	"testing"

	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   any
		details []string
	}{
		{
			name:  "valid swipe",
			input: &usecase.SwipeInput{PlaceID: 1, Direction: "right"},
		},
		{
			name:    "bad direction and place",
			input:   &usecase.SwipeInput{PlaceID: 0, Direction: "up"},
			details: []string{"place_id: failed required", "direction: failed oneof=left right"},
		},
		{
			name: "nested items use json names",
			input: &usecase.ReorderImagesInput{
				PlaceID: 1,
				Items:   []usecase.ImageOrderInput{{ID: 1, Order: -1}},
			},
			details: []string{"items[0].order: failed gte=0"},
		},
		{
			name:    "invalid image url",
			input:   &usecase.CreatePlaceInput{Name: "Cafe", ImageURLs: []string{"not a url"}},
			details: []string{"image_urls[0]: failed url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.details == nil {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			appErr := domainerrors.Resolve(err)
			for _, detail := range tt.details {
				assert.Contains(t, appErr.Details(), detail)
			}
		})
	}
}
