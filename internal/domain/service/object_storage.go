package service

import (
	"context"
	"time"
)

// PresignedUpload is a time-limited direct upload grant.
type PresignedUpload struct {
	URL       string
	ExpiresIn time.Duration
}

// ObjectStorage is the narrow surface the core needs from the blob store.
type ObjectStorage interface {
	// PresignUpload issues a PUT URL for key restricted to contentType.
	PresignUpload(ctx context.Context, key, contentType string) (*PresignedUpload, error)

	// Delete removes key. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// PublicURL is the URL clients use to read key once uploaded.
	PublicURL(key string) string
}
