package model

import "time"

// PlaceModel is the GORM-specific struct for the 'places' table.
// Note: the coordinates column is geometry(Point,4326) and is not mapped in
// this model; repositories use raw PostGIS expressions for it.
type PlaceModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	BusinessID  int64     `gorm:"not null;index"`
	Name        string    `gorm:"type:text;not null"`
	Description *string   `gorm:"type:text"`
	Address     *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}

// PlaceImageModel is the GORM-specific struct for the 'place_images' table.
type PlaceImageModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	PlaceID    int64     `gorm:"not null;index:idx_place_images_place_status_order,priority:1"`
	URL        string    `gorm:"column:url;type:text;not null"`
	StorageKey *string   `gorm:"type:text"`
	Order      int       `gorm:"column:order;not null;default:0;index:idx_place_images_place_status_order,priority:3"`
	Status     string    `gorm:"type:text;not null;default:confirmed;index:idx_place_images_place_status_order,priority:2"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PlaceImageModel) TableName() string {
	return "place_images"
}

// TagModel is the GORM-specific struct for the 'tags' table.
type TagModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:text;not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (TagModel) TableName() string {
	return "tags"
}

// PlaceTagModel links places and tags.
type PlaceTagModel struct {
	PlaceID int64 `gorm:"primaryKey;autoIncrement:false"`
	TagID   int64 `gorm:"primaryKey;autoIncrement:false"`
}

// TableName explicitly sets the table name for GORM.
func (PlaceTagModel) TableName() string {
	return "place_tags"
}
