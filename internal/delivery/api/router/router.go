// Package router contains routing for the API delivery.
package router

import (
	"placeswipe/config"
	"placeswipe/internal/delivery/api/middleware"
	"placeswipe/internal/delivery/api/router/handler"
	"placeswipe/internal/delivery/api/rpc"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RPC            *rpc.Dispatcher
	PlaceHandler   *handler.PlaceHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

type router struct {
	rpc            *rpc.Dispatcher
	placeHandler   *handler.PlaceHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		rpc:            params.RPC,
		placeHandler:   params.PlaceHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Sessions are optional everywhere; use cases enforce roles.
	e.POST("/rpc", r.rpc.ServeHTTP, r.authMiddleware.Authenticate)
	e.GET("/places/:id/qr.png", r.placeHandler.QRCode, r.authMiddleware.Authenticate)
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test", r.authMiddleware.Authenticate)
	testGroup.GET("/session", r.testHandler.Session)
}
