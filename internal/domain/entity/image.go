package entity

import "time"

// ImageStatus is the upload lifecycle state of a place image.
type ImageStatus string

const (
	// ImageStatusPending marks an image whose upload has not been confirmed.
	ImageStatusPending ImageStatus = "pending"
	// ImageStatusConfirmed marks an image that is part of the place's gallery.
	ImageStatusConfirmed ImageStatus = "confirmed"
)

// PendingImageOrder keeps pending rows behind every confirmed image.
const PendingImageOrder = 9999

// PlaceImage is one image of a place's gallery.
type PlaceImage struct {
	ID         int64       `json:"id"`
	PlaceID    int64       `json:"place_id"`
	URL        string      `json:"url"`
	StorageKey *string     `json:"storage_key,omitempty"` // Object key, nil for externally hosted images.
	Order      int         `json:"order"`
	Status     ImageStatus `json:"status,omitempty"`
	CreatedAt  time.Time   `json:"created_at,omitzero"`
}

// IsConfirmed reports whether the image completed the upload handshake.
func (i *PlaceImage) IsConfirmed() bool {
	return i.Status == ImageStatusConfirmed
}

// UploadTicket is what a business receives to upload a new image directly to storage.
type UploadTicket struct {
	UploadURL string      `json:"upload_url"` // Presigned PUT URL.
	FileURL   string      `json:"file_url"`   // Public URL once uploaded.
	Key       string      `json:"key"`
	ExpiresIn int         `json:"expires_in"` // Seconds until UploadURL expires.
	Image     *PlaceImage `json:"image"`      // The pending row awaiting confirmation.
}
