package service

// QRCodeService defines the interface for generating QR codes that link to
// public pages of the marketing site.
type QRCodeService interface {
	// GenerateShareQR encodes the given public URL as a PNG image.
	GenerateShareQR(url string) ([]byte, error)
}
