package entity

import "time"

// SwipeDirection is the explorer's verdict on a place. Right means saved.
type SwipeDirection string

const (
	SwipeLeft  SwipeDirection = "left"
	SwipeRight SwipeDirection = "right"
)

// IsValid checks if the direction is a known value.
func (d SwipeDirection) IsValid() bool {
	return d == SwipeLeft || d == SwipeRight
}

// Swipe is unique per (UserID, PlaceID); re-swiping overwrites Direction.
type Swipe struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	PlaceID   int64          `json:"place_id"`
	Direction SwipeDirection `json:"direction"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// SavedPlace is a right swipe together with the place it points at.
type SavedPlace struct {
	SwipeID int64     `json:"swipe_id"`
	SavedAt time.Time `json:"saved_at"`
	Place   *Place    `json:"place"`
}

// RecommendedPlace is a place suggestion. DistanceKm is nil when the
// explorer has no saved location.
type RecommendedPlace struct {
	*Place
	DistanceKm *float64 `json:"distance_km"`
}
