// Package handler holds the REST side routes served next to the RPC endpoint.
package handler

import (
	"net/http"

	"placeswipe/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
