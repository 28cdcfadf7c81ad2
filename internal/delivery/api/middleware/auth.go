package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "placeswipe/internal/delivery/context"
	"placeswipe/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware attaches the caller's session to the request context.
type AuthMiddleware struct {
	verifier service.SessionVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.SessionVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate never rejects a request. A missing or invalid bearer token
// leaves the session nil and the use cases decide what anonymous callers
// may do.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return next(c)
		}

		ctx := c.Request().Context()
		session, err := m.verifier.Verify(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Ignoring invalid session token", slog.Any("error", err))

			return next(c)
		}

		c.SetRequest(c.Request().WithContext(deliverycontext.WithSession(ctx, session)))

		return next(c)
	}
}
