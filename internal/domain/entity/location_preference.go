package entity

import "time"

// LocationPreference is an explorer's search origin and radius.
type LocationPreference struct {
	ID             int64        `json:"id,omitempty"`
	UserID         int64        `json:"user_id"`
	Coordinates    *Coordinates `json:"coordinates"`
	SearchRadiusKm float64      `json:"search_radius_km"`
	UpdatedAt      time.Time    `json:"updated_at,omitzero"`
}

// HasLocation reports whether a search origin is set.
func (p *LocationPreference) HasLocation() bool {
	return p != nil && p.Coordinates != nil
}
