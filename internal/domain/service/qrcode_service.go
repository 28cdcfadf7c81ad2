package service

// QRCodeService renders shareable QR codes.
type QRCodeService interface {
	// GeneratePlaceShareQR returns a PNG encoding the public link of a place.
	GeneratePlaceShareQR(placeID int64) ([]byte, error)
}
