// Package geocoding resolves coordinates to short locality names using a
// Nominatim compatible reverse geocoding API.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"placeswipe/config"
	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/domain/service"
	"placeswipe/internal/errors"

	"github.com/hashicorp/go-retryablehttp"
	lru "github.com/hashicorp/golang-lru"
	"github.com/paulmach/orb"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "placeswipe"

	// Lookups are keyed at ~11m resolution.
	coordinatePrecision = 4

	maxResponseBytes = 1 << 20

	defaultLookupTimeout = 15 * time.Second
)

// reverseResponse is the subset of the jsonv2 reverse payload in use.
type reverseResponse struct {
	Error   string         `json:"error"`
	Address reverseAddress `json:"address"`
}

type reverseAddress struct {
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	Suburb      string `json:"suburb"`
	County      string `json:"county"`
	CountryCode string `json:"country_code"`
}

// locality picks the most specific populated place name.
func (a reverseAddress) locality() string {
	for _, name := range []string{a.City, a.Town, a.Village, a.Suburb, a.County} {
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}

	return ""
}

func (a reverseAddress) format() string {
	name := a.locality()
	country := strings.ToUpper(strings.TrimSpace(a.CountryCode))

	switch {
	case name != "" && country != "":
		return name + ", " + country
	case name != "":
		return name
	default:
		return country
	}
}

// nominatimGeocoder bounds a shared upstream lookup, retries included, by lookupTimeout.
type nominatimGeocoder struct {
	client        *retryablehttp.Client
	baseURL       string
	apiKey        string
	userAgent     string
	cache         *lru.Cache
	group         singleflight.Group
	lookupTimeout time.Duration
	logger        *slog.Logger
}

// NewReverseGeocoder creates a reverse geocoder from the geocoding config.
func NewReverseGeocoder(cfg *config.Config, logger *slog.Logger) (service.ReverseGeocoder, error) {
	gc := cfg.Geocoding
	if gc == nil {
		gc = &config.GeocodingConfig{}
	}

	client := retryablehttp.NewClient()
	client.HTTPClient.Timeout = gc.Timeout
	client.RetryMax = gc.RetryMax
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.Logger = logger

	return newNominatimGeocoder(gc, client, logger)
}

func newNominatimGeocoder(gc *config.GeocodingConfig, client *retryablehttp.Client, logger *slog.Logger) (*nominatimGeocoder, error) {
	cacheSize := gc.CacheSize
	if cacheSize <= 0 {
		cacheSize = 1
	}

	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create geocoding cache")
	}

	baseURL := strings.TrimRight(gc.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	userAgent := gc.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	lookupTimeout := defaultLookupTimeout
	if gc.Timeout > 0 {
		lookupTimeout = gc.Timeout * time.Duration(max(gc.RetryMax, 0)+1)
	}

	return &nominatimGeocoder{
		client:        client,
		baseURL:       baseURL,
		apiKey:        gc.APIKey,
		userAgent:     userAgent,
		cache:         cache,
		lookupTimeout: lookupTimeout,
		logger:        logger,
	}, nil
}

// Locality returns e.g. "Lisbon, PT" for a point inside Lisbon. Concurrent
// lookups of the same rounded point share one upstream request.
//
// The shared request is detached from every caller's cancellation and bounded
// by lookupTimeout instead; each caller stops waiting when its own ctx ends.
func (g *nominatimGeocoder) Locality(ctx context.Context, point orb.Point) (string, error) {
	key := cacheKey(point)
	if cached, ok := g.cache.Get(key); ok {
		return cached.(string), nil
	}

	shared := context.WithoutCancel(ctx)
	results := g.group.DoChan(key, func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(shared, g.lookupTimeout)
		defer cancel()

		locality, err := g.reverse(lookupCtx, point)
		if err != nil {
			return "", err
		}
		g.cache.Add(key, locality)

		return locality, nil
	})

	select {
	case <-ctx.Done():
		return "", errors.Wrap(domainerrors.ErrGeocodingFailed.WithDetails(ctx.Err().Error()), "reverse geocode")
	case res := <-results:
		if res.Err != nil {
			return "", errors.Wrap(domainerrors.ErrGeocodingFailed.WithDetails(res.Err.Error()), "reverse geocode")
		}

		return res.Val.(string), nil
	}
}

func (g *nominatimGeocoder) reverse(ctx context.Context, point orb.Point) (string, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", strconv.FormatFloat(point.Lat(), 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(point.Lon(), 'f', -1, 64))
	query.Set("zoom", "10")
	query.Set("addressdetails", "1")
	if g.apiKey != "" {
		query.Set("key", g.apiKey)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/reverse?"+query.Encode(), nil)
	if err != nil {
		return "", errors.Wrap(err, "build reverse request")
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "reverse request")
	}
	defer resp.Body.Close()

	g.logger.DebugContext(ctx, "Reverse geocode",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", errors.Errorf("reverse geocoder returned status %d", resp.StatusCode)
	}

	var body reverseResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return "", errors.Wrap(err, "decode reverse response")
	}

	if body.Error != "" {
		return "", errors.New(body.Error)
	}

	locality := body.Address.format()
	if locality == "" {
		return "", errors.New("no locality for point")
	}

	return locality, nil
}

func cacheKey(point orb.Point) string {
	return fmt.Sprintf("%.*f,%.*f", coordinatePrecision, point.Lat(), coordinatePrecision, point.Lon())
}
