package handler

import (
	"net/http"
	"strconv"

	deliverycontext "placeswipe/internal/delivery/context"
	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PlaceHandler serves place resources that are not JSON.
type PlaceHandler struct {
	business usecase.BusinessUsecase
}

// NewPlaceHandler creates a new PlaceHandler instance
func NewPlaceHandler(business usecase.BusinessUsecase) *PlaceHandler {
	return &PlaceHandler{business: business}
}

// QRCode renders the share QR code of a place owned by the caller as PNG.
func (h *PlaceHandler) QRCode(c echo.Context) error {
	placeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || placeID <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	ctx := c.Request().Context()
	png, err := h.business.PlaceQRCode(ctx, deliverycontext.GetSession(ctx), placeID)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=300")

	return c.Blob(http.StatusOK, "image/png", png)
}
