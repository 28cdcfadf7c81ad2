package usecase

import (
	"context"
	"time"

	"placeswipe/internal/domain/entity"
)

// RequestUploadInput asks for a presigned upload URL for a new place image
type RequestUploadInput struct {
	PlaceID     int64  `json:"place_id" validate:"required,gt=0"`
	FileName    string `json:"file_name" validate:"required,max=255"`
	ContentType string `json:"content_type" validate:"required,max=100"`
}

// ImageIDInput identifies a single image
type ImageIDInput struct {
	ImageID int64 `json:"image_id" validate:"required,gt=0"`
}

// ImageOrderInput assigns a display position to one image
type ImageOrderInput struct {
	ID    int64 `json:"id" validate:"required,gt=0"`
	Order int   `json:"order" validate:"gte=0"`
}

// ReorderImagesInput represents a gallery reorder of one place
type ReorderImagesInput struct {
	PlaceID int64             `json:"place_id" validate:"required,gt=0"`
	Items   []ImageOrderInput `json:"items" validate:"required,min=1,max=100,dive"`
}

// CleanupOutput summarizes one stale upload sweep
type CleanupOutput struct {
	Found           int   `json:"found"`
	Deleted         int64 `json:"deleted"`
	StorageFailures int   `json:"storage_failures"`
}

// ImageUsecase defines the upload handshake and gallery management of place images
type ImageUsecase interface {
	// RequestUpload presigns a direct upload and records a pending image.
	RequestUpload(ctx context.Context, session *entity.AuthSession, input *RequestUploadInput) (*entity.UploadTicket, error)
	// ConfirmUpload appends a pending image to the gallery. Confirming an
	// already confirmed image returns it unchanged.
	ConfirmUpload(ctx context.Context, session *entity.AuthSession, imageID int64) (*entity.PlaceImage, error)
	ReorderImages(ctx context.Context, session *entity.AuthSession, input *ReorderImagesInput) ([]*entity.PlaceImage, error)
	// DeleteImage removes the row, then best effort the stored object.
	DeleteImage(ctx context.Context, session *entity.AuthSession, imageID int64) (*entity.PlaceImage, error)
	ListImages(ctx context.Context, session *entity.AuthSession, placeID int64) ([]*entity.PlaceImage, error)
	// CleanupStaleUploads drops pending images older than the retention window.
	// Safe to run concurrently or repeatedly.
	CleanupStaleUploads(ctx context.Context, now time.Time) (*CleanupOutput, error)
}
