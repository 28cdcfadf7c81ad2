package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"placeswipe/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSession(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetSession(ctx))

	session := &entity.AuthSession{IsAuthenticated: true, UserID: "user_1"}
	assert.Same(t, session, GetSession(WithSession(ctx, session)))
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	assert.Len(t, generated, 36)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestValuesOfAnotherTypeAreIgnored(t *testing.T) {
	ctx := context.WithValue(context.Background(), KeyLogger, "not a logger")
	ctx = context.WithValue(ctx, KeySession, entity.AuthSession{IsAuthenticated: true})
	ctx = context.WithValue(ctx, KeyRequestID, 42)

	assert.Nil(t, GetLogger(ctx))
	assert.Nil(t, GetSession(ctx))
	assert.Empty(t, GetRequestIDFromContext(ctx))
}
