package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"placeswipe/config"
	domainerrors "placeswipe/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

var testStorageConfig = &config.StorageConfig{
	PublicBaseURL:   "https://cdn.example.com/",
	UploadURLExpiry: 10 * time.Minute,
}

func newFileBucket(t *testing.T) *blob.Bucket {
	t.Helper()

	baseURL, err := url.Parse("http://localhost:8080/uploads")
	require.NoError(t, err)

	bucket, err := fileblob.OpenBucket(t.TempDir(), &fileblob.Options{
		URLSigner: fileblob.NewURLSignerHMAC(baseURL, []byte("signing-secret")),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return bucket
}

func TestBlobStorage_PresignUpload(t *testing.T) {
	storage := newBlobStorage(newFileBucket(t), testStorageConfig)

	upload, err := storage.PresignUpload(context.Background(), "places/1/photo.jpg", "image/jpeg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(upload.URL, "http://localhost:8080/uploads"), upload.URL)
	assert.Equal(t, 10*time.Minute, upload.ExpiresIn)
}

func TestBlobStorage_PresignUpload_Unsupported(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	storage := newBlobStorage(bucket, testStorageConfig)

	upload, err := storage.PresignUpload(context.Background(), "places/1/photo.jpg", "image/jpeg")
	require.Error(t, err)
	assert.Nil(t, upload)
	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
	assert.Equal(t, domainerrors.CodeStorageFailed, domainerrors.Resolve(err).ErrorCode())
}

func TestBlobStorage_Delete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	storage := newBlobStorage(bucket, testStorageConfig)

	require.NoError(t, bucket.WriteAll(ctx, "places/1/a.jpg", []byte("jpeg"), nil))

	require.NoError(t, storage.Delete(ctx, "places/1/a.jpg"))

	exists, err := bucket.Exists(ctx, "places/1/a.jpg")
	require.NoError(t, err)
	assert.False(t, exists)

	// Already gone is not an error.
	require.NoError(t, storage.Delete(ctx, "places/1/a.jpg"))
}

func TestBlobStorage_PublicURL(t *testing.T) {
	storage := newBlobStorage(memblob.OpenBucket(nil), testStorageConfig)

	assert.Equal(t, "https://cdn.example.com/places/1/a.jpg", storage.PublicURL("places/1/a.jpg"))
	assert.Equal(t, "https://cdn.example.com/places/1/a.jpg", storage.PublicURL("/places/1/a.jpg"))
}

func TestRedactBucketURL(t *testing.T) {
	assert.Equal(t, "s3://photos", redactBucketURL("s3://photos?region=eu-west-1&endpoint=https://x"))
	assert.Equal(t, "mem://", redactBucketURL("mem://"))
}
