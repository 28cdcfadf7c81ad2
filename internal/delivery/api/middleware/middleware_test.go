package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "placeswipe/internal/delivery/context"
	"placeswipe/internal/domain/entity"
	domainerrors "placeswipe/internal/domain/errors"
	mockSvc "placeswipe/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	session := &entity.AuthSession{IsAuthenticated: true, UserID: "user_1", Role: entity.RoleExplorer}

	tests := []struct {
		name     string
		header   string
		setup    func(verifier *mockSvc.MockSessionVerifier)
		expected *entity.AuthSession
	}{
		{name: "no header"},
		{name: "not a bearer token", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer", header: "Bearer "},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(verifier *mockSvc.MockSessionVerifier) {
				verifier.EXPECT().Verify("good").Return(session, nil)
			},
			expected: session,
		},
		{
			name:   "scheme is case insensitive",
			header: "bearer good",
			setup: func(verifier *mockSvc.MockSessionVerifier) {
				verifier.EXPECT().Verify("good").Return(session, nil)
			},
			expected: session,
		},
		{
			name:   "invalid token leaves the session nil",
			header: "Bearer expired",
			setup: func(verifier *mockSvc.MockSessionVerifier) {
				verifier.EXPECT().Verify("expired").Return(nil, errors.New("token is expired"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := mockSvc.NewMockSessionVerifier(t)
			if tt.setup != nil {
				tt.setup(verifier)
			}
			mw := NewAuthMiddleware(verifier, newDiscardLogger())

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/rpc", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			called := false
			err := mw.Authenticate(func(c echo.Context) error {
				called = true
				assert.Equal(t, tt.expected, deliverycontext.GetSession(c.Request().Context()))

				return nil
			})(c)
			require.NoError(t, err)
			assert.True(t, called)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		status     int
		code       string
		hasDetails bool
	}{
		{
			name:       "validation keeps details",
			err:        domainerrors.ErrValidationFailed.WithDetails("name: failed required"),
			status:     http.StatusBadRequest,
			code:       domainerrors.CodeValidationFailed,
			hasDetails: true,
		},
		{
			name:   "wrapped not found",
			err:    errors.Wrap(domainerrors.ErrPlaceNotFound, "lookup"),
			status: http.StatusNotFound,
			code:   domainerrors.CodePlaceNotFound,
		},
		{
			name:   "database details are hidden",
			err:    domainerrors.NewDatabaseExecuteError(errors.New("pq: boom"), "failed to find place"),
			status: http.StatusInternalServerError,
			code:   domainerrors.CodeDatabaseExecute,
		},
		{
			name:   "echo error",
			err:    echo.NewHTTPError(http.StatusMethodNotAllowed),
			status: http.StatusMethodNotAllowed,
			code:   "HTTP_ERROR",
		},
		{
			name:   "unknown error",
			err:    errors.New("nil pointer"),
			status: http.StatusInternalServerError,
			code:   domainerrors.CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/places/1/qr.png", nil), rec)

			NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.status, rec.Code)

			var body struct {
				Error struct {
					Code    string `json:"code"`
					Details string `json:"details"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.hasDetails, body.Error.Details != "")
		})
	}
}
