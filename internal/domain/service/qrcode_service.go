package service

import (
	"github.com/google/uuid"
)

// ReceiptQRData is the payload encoded in a booking receipt QR code.
type ReceiptQRData struct {
	BookingID     uuid.UUID
	TransactionID string
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateReceiptQR renders a PNG QR code proving payment of a booking.
	GenerateReceiptQR(bookingID uuid.UUID, transactionID string) ([]byte, error)

	// ParseReceiptQR decodes the payload produced by GenerateReceiptQR.
	ParseReceiptQR(qrData string) (*ReceiptQRData, error)
}
