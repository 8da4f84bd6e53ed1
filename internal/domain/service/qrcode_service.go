package service

// QRCodeService renders shareable order codes as QR images.
type QRCodeService interface {
	// RenderOrderCode generates a PNG QR image encoding the order code.
	RenderOrderCode(orderCode string) ([]byte, error)
}
