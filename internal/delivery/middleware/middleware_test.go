package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"placeswipe/config"
	deliverycontext "placeswipe/internal/delivery/context"
	domainerrors "placeswipe/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "reuses client id", header: "abc-123", expected: "abc-123"},
		{name: "generates when missing"},
		{name: "replaces id with spaces", header: "has space"},
		{name: "replaces oversized id", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			mw := NewRequestIDMiddleware(logger)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := mw.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLogger(c.Request().Context()).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			if tt.expected != "" {
				assert.Equal(t, tt.expected, seen)
			} else {
				assert.Len(t, seen, 36)
			}
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Contains(t, buf.String(), `"request_id":"`+seen+`"`)
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	newMiddleware := func(debug bool) (*LoggerMiddleware, *bytes.Buffer) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		return NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg), &buf
	}

	run := func(mw *LoggerMiddleware, handler echo.HandlerFunc) error {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/rpc?x=1", nil), httptest.NewRecorder())

		return mw.Handle(handler)(c)
	}

	t.Run("silent without debug", func(t *testing.T) {
		mw, buf := newMiddleware(false)

		require.NoError(t, run(mw, func(c echo.Context) error { return c.NoContent(http.StatusOK) }))
		assert.Empty(t, buf.String())
	})

	t.Run("logs success at info", func(t *testing.T) {
		mw, buf := newMiddleware(true)

		require.NoError(t, run(mw, func(c echo.Context) error { return c.NoContent(http.StatusOK) }))
		assert.Contains(t, buf.String(), `"level":"INFO"`)
		assert.Contains(t, buf.String(), `"status":200`)
		assert.Contains(t, buf.String(), `"query":"x=1"`)
	})

	t.Run("uses the status of a returned app error", func(t *testing.T) {
		mw, buf := newMiddleware(true)

		err := run(mw, func(echo.Context) error { return domainerrors.ErrPlaceNotFound })
		require.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), `"status":404`)
	})
}
