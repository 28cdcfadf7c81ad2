package config

import (
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "1MB"
	defaultUploadURLExpiry    = 10 * time.Minute
	defaultPendingRetention   = time.Hour
	defaultCleanupInterval    = 15 * time.Minute
	defaultSearchRadiusKm     = 5
	defaultMaxSearchRadiusKm  = 100
	defaultGeocodingTimeout   = 5 * time.Second
	defaultSessionLeeway      = 30 * time.Second
	defaultGeocodingRetryMax  = 2
	defaultGeocodingCacheSize = 1024
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Session verifies tokens issued by the external auth provider
	Session *SessionConfig `json:"session" yaml:"session"`

	// Storage is the object store holding place images
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Uploads *UploadsConfig `json:"uploads" yaml:"uploads"`

	Explorer *ExplorerConfig `json:"explorer" yaml:"explorer"`

	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// QRCode configuration for place share QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SessionConfig holds the verification material for session tokens.
// Exactly one of HMACSecret or RSAPublicKeyPEM is expected.
type SessionConfig struct {
	Issuer          string        `json:"issuer" yaml:"issuer"`
	HMACSecret      string        `json:"hmacSecret" yaml:"hmacSecret"`
	RSAPublicKeyPEM string        `json:"rsaPublicKeyPem" yaml:"rsaPublicKeyPem"`
	Leeway          time.Duration `json:"leeway" yaml:"leeway"`
}

// StorageConfig points at a gocloud blob bucket (s3://, file://, mem://).
type StorageConfig struct {
	BucketURL           string        `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL       string        `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	UploadURLExpiry     time.Duration `json:"uploadUrlExpiry" yaml:"uploadUrlExpiry"`
	KeyPrefix           string        `json:"keyPrefix" yaml:"keyPrefix"`
	AllowedContentTypes []string      `json:"allowedContentTypes" yaml:"allowedContentTypes"`
}

// UploadsConfig controls garbage collection of unconfirmed uploads.
type UploadsConfig struct {
	PendingRetention time.Duration `json:"pendingRetention" yaml:"pendingRetention"`
	CleanupInterval  time.Duration `json:"cleanupInterval" yaml:"cleanupInterval"`
	CleanupEnabled   bool          `json:"cleanupEnabled" yaml:"cleanupEnabled"`
}

// ExplorerConfig bounds the recommendation search radius.
type ExplorerConfig struct {
	DefaultRadiusKm float64 `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`
	MaxRadiusKm     float64 `json:"maxRadiusKm" yaml:"maxRadiusKm"`
}

// GeocodingConfig targets a Nominatim compatible reverse geocoding API.
type GeocodingConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey    string        `json:"apiKey" yaml:"apiKey"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
	RetryMax  int           `json:"retryMax" yaml:"retryMax"`
	CacheSize int           `json:"cacheSize" yaml:"cacheSize"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never see nil.
func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.Leeway <= 0 {
		cfg.Session.Leeway = defaultSessionLeeway
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{BucketURL: "mem://"}
	}
	if cfg.Storage.UploadURLExpiry <= 0 {
		cfg.Storage.UploadURLExpiry = defaultUploadURLExpiry
	}
	if len(cfg.Storage.AllowedContentTypes) == 0 {
		cfg.Storage.AllowedContentTypes = []string{"image/jpeg", "image/png", "image/webp"}
	}

	if cfg.Uploads == nil {
		cfg.Uploads = &UploadsConfig{CleanupEnabled: true}
	}
	if cfg.Uploads.PendingRetention <= 0 {
		cfg.Uploads.PendingRetention = defaultPendingRetention
	}
	if cfg.Uploads.CleanupInterval <= 0 {
		cfg.Uploads.CleanupInterval = defaultCleanupInterval
	}

	if cfg.Explorer == nil {
		cfg.Explorer = &ExplorerConfig{}
	}
	if cfg.Explorer.MaxRadiusKm <= 0 {
		cfg.Explorer.MaxRadiusKm = defaultMaxSearchRadiusKm
	}
	if cfg.Explorer.DefaultRadiusKm <= 0 || cfg.Explorer.DefaultRadiusKm > cfg.Explorer.MaxRadiusKm {
		cfg.Explorer.DefaultRadiusKm = min(defaultSearchRadiusKm, cfg.Explorer.MaxRadiusKm)
	}

	if cfg.Geocoding == nil {
		cfg.Geocoding = &GeocodingConfig{}
	}
	if cfg.Geocoding.Timeout <= 0 {
		cfg.Geocoding.Timeout = defaultGeocodingTimeout
	}
	if cfg.Geocoding.RetryMax < 0 {
		cfg.Geocoding.RetryMax = 0
	} else if cfg.Geocoding.RetryMax == 0 {
		cfg.Geocoding.RetryMax = defaultGeocodingRetryMax
	}
	if cfg.Geocoding.CacheSize <= 0 {
		cfg.Geocoding.CacheSize = defaultGeocodingCacheSize
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}

	if cfg.TestRoutes == nil {
		cfg.TestRoutes = &TestRoutesConfig{}
	}
}
