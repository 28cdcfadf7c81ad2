package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, defaultUploadURLExpiry, cfg.Storage.UploadURLExpiry)
	assert.Equal(t, time.Hour, cfg.Uploads.PendingRetention)
	assert.Equal(t, 15*time.Minute, cfg.Uploads.CleanupInterval)
	assert.True(t, cfg.Uploads.CleanupEnabled)
	assert.InDelta(t, 5.0, cfg.Explorer.DefaultRadiusKm, 0)
	assert.InDelta(t, 100.0, cfg.Explorer.MaxRadiusKm, 0)
	assert.Equal(t, defaultGeocodingTimeout, cfg.Geocoding.Timeout)
	assert.Equal(t, defaultGeocodingRetryMax, cfg.Geocoding.RetryMax)
	assert.Equal(t, defaultGeocodingCacheSize, cfg.Geocoding.CacheSize)
	assert.NotNil(t, cfg.QRCode)
	assert.NotNil(t, cfg.TestRoutes)
}

func TestApplyDefaults_NegativeRetryDisablesRetries(t *testing.T) {
	cfg := &Config{Geocoding: &GeocodingConfig{RetryMax: -1}}
	cfg.applyDefaults()

	assert.Equal(t, 0, cfg.Geocoding.RetryMax)
}

func TestApplyDefaults_DefaultRadiusNeverExceedsMax(t *testing.T) {
	cfg := &Config{Explorer: &ExplorerConfig{DefaultRadiusKm: 50, MaxRadiusKm: 3}}
	cfg.applyDefaults()

	assert.InDelta(t, 3.0, cfg.Explorer.DefaultRadiusKm, 0)
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
env:
  serviceName: placeswipe
storage:
  bucketUrl: mem://
  uploadUrlExpiry: 5m
uploads:
  pendingRetention: 2h
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), yamlBody, 0o600))

	t.Chdir(dir)
	t.Setenv("STORAGE_BUCKETURL", "file:///tmp/images")

	cfg, err := LoadWithEnv[Config]("app")
	require.NoError(t, err)

	assert.Equal(t, "placeswipe", cfg.Env.ServiceName)
	assert.Equal(t, "file:///tmp/images", cfg.Storage.BucketURL)
	assert.Equal(t, 5*time.Minute, cfg.Storage.UploadURLExpiry)
	assert.Equal(t, 2*time.Hour, cfg.Uploads.PendingRetention)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
}
