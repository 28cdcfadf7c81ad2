package model

import "time"

// SwipeModel is the GORM-specific struct for the 'swipes' table.
// (user_id, place_id) is unique; upserts conflict on it.
type SwipeModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_swipes_user_place"`
	PlaceID   int64     `gorm:"not null;uniqueIndex:uq_swipes_user_place"`
	Direction string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SwipeModel) TableName() string {
	return "swipes"
}

// FavoriteModel mirrors the 'favorites' table. No repository writes it yet.
type FavoriteModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"not null"`
	PlaceID   int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
