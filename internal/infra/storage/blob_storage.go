// Package storage adapts a gocloud blob bucket to the domain ObjectStorage port.
package storage

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"placeswipe/config"
	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/domain/service"
	"placeswipe/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	expiry        time.Duration
}

// BlobStorageParams holds dependencies for ObjectStorage, injected by Fx
type BlobStorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket (s3://, file:// or mem://) and
// closes it on shutdown.
func NewBlobStorage(params BlobStorageParams) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", redactBucketURL(cfg.BucketURL))
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.Wrap(bucket.Close(), "failed to close bucket")
		},
	})

	params.Logger.Info("Object storage initialized",
		slog.String("bucket", redactBucketURL(cfg.BucketURL)),
		slog.Duration("upload_url_expiry", cfg.UploadURLExpiry),
	)

	return newBlobStorage(bucket, cfg), nil
}

func newBlobStorage(bucket *blob.Bucket, cfg *config.StorageConfig) *blobStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		expiry:        cfg.UploadURLExpiry,
	}
}

func (s *blobStorage) PresignUpload(ctx context.Context, key, contentType string) (*service.PresignedUpload, error) {
	url, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Method:      http.MethodPut,
		ContentType: contentType,
		Expiry:      s.expiry,
	})
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrStorageFailed.WithDetails(err.Error()), "presign upload for %s", key)
	}

	return &service.PresignedUpload{URL: url, ExpiresIn: s.expiry}, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err == nil || gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}

	return errors.Wrapf(domainerrors.ErrStorageFailed.WithDetails(err.Error()), "delete object %s", key)
}

func (s *blobStorage) PublicURL(key string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(key, "/")
}

// redactBucketURL drops the query string, which may carry credentials.
func redactBucketURL(bucketURL string) string {
	if i := strings.IndexByte(bucketURL, '?'); i >= 0 {
		return bucketURL[:i]
	}

	return bucketURL
}
