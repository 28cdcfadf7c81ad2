package qrcode

import (
	"strconv"
	"strings"

	"placeswipe/config"
	"placeswipe/internal/domain/service"
	"placeswipe/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qc := cfg.QRCode
	if qc == nil {
		qc = &config.QRCodeConfig{}
	}

	size := qc.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(qc.ErrorCorrectionLevel),
		baseURL:              strings.TrimRight(qc.BaseURL, "/"),
	}
}

// parseRecoveryLevel accepts both the QR letter grades and go-qrcode's names.
func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// PlaceShareLink is the public link a share QR code points at.
func (s *qrcodeService) PlaceShareLink(placeID int64) string {
	return s.baseURL + "/places/" + strconv.FormatInt(placeID, 10)
}

// GeneratePlaceShareQR renders the place share link as a PNG
func (s *qrcodeService) GeneratePlaceShareQR(placeID int64) ([]byte, error) {
	if placeID <= 0 {
		return nil, errors.Errorf("invalid place id %d", placeID)
	}

	qrCode, err := qrcode.New(s.PlaceShareLink(placeID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
