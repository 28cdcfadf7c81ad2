package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"placeswipe/config"
	"placeswipe/internal/delivery/api/middleware"
	"placeswipe/internal/delivery/api/router"
	"placeswipe/internal/delivery/api/router/handler"
	"placeswipe/internal/delivery/api/rpc"
	deliverycontext "placeswipe/internal/delivery/context"
	"placeswipe/internal/domain/entity"
	domainerrors "placeswipe/internal/domain/errors"
	mockSvc "placeswipe/internal/mocks/service"
	mockUsecase "placeswipe/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverMocks struct {
	verifier *mockSvc.MockSessionVerifier
	users    *mockUsecase.MockUserUsecase
	business *mockUsecase.MockBusinessUsecase
}

var businessSession = &entity.AuthSession{
	IsAuthenticated:    true,
	UserID:             "user_business",
	Email:              "owner@example.com",
	OnboardingComplete: true,
	Role:               entity.RoleBusiness,
}

func newEchoForTest(t *testing.T, testRoutes bool) (*echo.Echo, *serverMocks) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{TestRoutes: &config.TestRoutesConfig{Enabled: testRoutes}}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	m := &serverMocks{
		verifier: mockSvc.NewMockSessionVerifier(t),
		users:    mockUsecase.NewMockUserUsecase(t),
		business: mockUsecase.NewMockBusinessUsecase(t),
	}

	e := newEcho(cfg, logger)
	r := router.NewRouter(router.RouterParams{
		RPC: rpc.NewHandler(rpc.HandlerParams{
			Logger:          logger,
			UserUsecase:     m.users,
			ExplorerUsecase: mockUsecase.NewMockExplorerUsecase(t),
			BusinessUsecase: m.business,
			ImageUsecase:    mockUsecase.NewMockImageUsecase(t),
		}),
		PlaceHandler:   handler.NewPlaceHandler(m.business),
		TestHandler:    handler.NewTestHandler(),
		AuthMiddleware: middleware.NewAuthMiddleware(m.verifier, logger),
		Config:         cfg,
	})
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	return e, m
}

func TestServer_Health(t *testing.T) {
	e, _ := newEchoForTest(t, false)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_RPCWithSession(t *testing.T) {
	e, m := newEchoForTest(t, false)

	m.verifier.EXPECT().Verify("token-1").Return(businessSession, nil)
	m.users.EXPECT().Me(mock.Anything, businessSession).Return(&entity.User{ID: 10, FullName: "Owner"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/rpc", strings.NewReader(`{"id":"me","method":"user.me"}`+"\n"))
	req.Header.Set(echo.HeaderAuthorization, "Bearer token-1")
	req.Header.Set(echo.HeaderContentType, rpc.ContentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID    string `json:"id"`
		Tag   string `json:"_tag"`
		Value struct {
			ID       int64  `json:"id"`
			FullName string `json:"full_name"`
		} `json:"value"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "me", resp.ID)
	assert.Equal(t, rpc.TagSuccess, resp.Tag)
	assert.Equal(t, int64(10), resp.Value.ID)
}

func TestServer_RPCInvalidTokenIsAnonymous(t *testing.T) {
	e, m := newEchoForTest(t, false)

	m.verifier.EXPECT().Verify("expired").Return(nil, errors.New("token is expired"))
	m.users.EXPECT().Me(mock.Anything, (*entity.AuthSession)(nil)).Return(nil, domainerrors.ErrUnauthenticated)

	req := httptest.NewRequest(http.MethodPost, "/rpc", strings.NewReader(`{"id":"me","method":"user.me"}`))
	req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":"me","_tag":"Failure","error":{"_tag":"UNAUTHENTICATED","message":"sign in required"}}`,
		strings.TrimSpace(rec.Body.String()))
}

func TestServer_PlaceQRCode(t *testing.T) {
	t.Run("renders png", func(t *testing.T) {
		e, m := newEchoForTest(t, false)

		m.verifier.EXPECT().Verify("token-1").Return(businessSession, nil)
		m.business.EXPECT().PlaceQRCode(mock.Anything, businessSession, int64(42)).Return([]byte("\x89PNG"), nil)

		req := httptest.NewRequest(http.MethodGet, "/places/42/qr.png", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer token-1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "\x89PNG", rec.Body.String())
	})

	t.Run("bad id", func(t *testing.T) {
		e, _ := newEchoForTest(t, false)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/places/abc/qr.png", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), domainerrors.CodeValidationFailed)
	})

	t.Run("not the owner", func(t *testing.T) {
		e, m := newEchoForTest(t, false)

		m.verifier.EXPECT().Verify("token-1").Return(businessSession, nil)
		m.business.EXPECT().PlaceQRCode(mock.Anything, businessSession, int64(7)).Return(nil, domainerrors.ErrPlaceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/places/7/qr.png", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer token-1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), domainerrors.CodePlaceNotFound)
	})
}

func TestServer_TestRoutes(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		e, _ := newEchoForTest(t, false)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test/session", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("enabled", func(t *testing.T) {
		e, m := newEchoForTest(t, true)

		m.verifier.EXPECT().Verify("token-1").Return(businessSession, nil)

		req := httptest.NewRequest(http.MethodGet, "/test/session", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer token-1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"role":"business"`)
	})

	t.Run("enabled without session", func(t *testing.T) {
		e, _ := newEchoForTest(t, true)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test/session", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
