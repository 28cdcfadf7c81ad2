package model

import "time"

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	ExternalAuthID string    `gorm:"type:text;not null;uniqueIndex"`
	Email          string    `gorm:"type:text;not null;uniqueIndex"`
	FullName       string    `gorm:"type:text;not null"`
	Role           string    `gorm:"type:text;not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserLocationPreferenceModel mirrors 'user_location_preferences'.
// The coordinates geometry column is not mapped here; it is read and written
// through the geometry helpers in the postgres package.
type UserLocationPreferenceModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	UserID         int64     `gorm:"not null;uniqueIndex"`
	SearchRadiusKm float64   `gorm:"type:double precision;not null;default:5"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserLocationPreferenceModel) TableName() string {
	return "user_location_preferences"
}
