package handler

import (
	"net/http"

	"placeswipe/internal/delivery/api/response"
	deliverycontext "placeswipe/internal/delivery/context"
	domainerrors "placeswipe/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// TestHandler exposes debugging endpoints, registered only when test routes
// are enabled.
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// Session echoes the session resolved from the bearer token.
func (h *TestHandler) Session(c echo.Context) error {
	session := deliverycontext.GetSession(c.Request().Context())
	if !session.Authenticated() {
		return domainerrors.ErrUnauthenticated
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id":             session.UserID,
		"email":               session.Email,
		"role":                session.Role,
		"onboarding_complete": session.OnboardingComplete,
	})
}
