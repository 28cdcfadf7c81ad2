// Package context carries per-request values of the API: the request id, the
// request-scoped logger and the caller's session.
package context

import (
	"context"
	"log/slog"

	"placeswipe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey namespaces the values stored by this package.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	// KeySession holds *entity.AuthSession; absent for anonymous callers.
	KeySession ContextKey = "session"

	// HeaderXRequestID is echoed back on every response.
	HeaderXRequestID = "X-Request-Id"
)

// valueOf reads a typed value stored under key, or the zero value.
func valueOf[T any](ctx context.Context, key ContextKey) T {
	v, _ := ctx.Value(key).(T)

	return v
}

// GetRequestID returns the id the RequestID middleware stored on c. Outside
// that middleware a fresh id is minted so log lines still correlate.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	return valueOf[string](ctx, KeyRequestID)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	return valueOf[*slog.Logger](ctx, KeyLogger)
}

// GetLoggerOrDefault prefers the request logger, which already carries the
// request id, over fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithSession stores the verified session. Procedures read it back through
// GetSession and apply their own role rules.
func WithSession(ctx context.Context, session *entity.AuthSession) context.Context {
	return context.WithValue(ctx, KeySession, session)
}

// GetSession returns nil for anonymous requests.
func GetSession(ctx context.Context) *entity.AuthSession {
	return valueOf[*entity.AuthSession](ctx, KeySession)
}
