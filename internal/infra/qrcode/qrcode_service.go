// Package qrcode renders payment receipts as PNG QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"resale/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	receiptType = "receipt"
	defaultSize = 256
)

var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

// QRCodeData is the JSON payload encoded into a receipt.
type QRCodeData struct {
	BookingID     string `json:"booking_id"`
	TransactionID string `json:"transaction_id"`
	Type          string `json:"type"`
}

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService builds a receipt renderer. Unknown levels fall back to "M",
// non-positive sizes to 256px.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	level, ok := recoveryLevels[errorCorrectionLevel]
	if !ok {
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{size: size, level: level}
}

func (s *qrcodeService) GenerateReceiptQR(bookingID uuid.UUID, transactionID string) ([]byte, error) {
	payload, err := json.Marshal(QRCodeData{
		BookingID:     bookingID.String(),
		TransactionID: transactionID,
		Type:          receiptType,
	})
	if err != nil {
		return nil, fmt.Errorf("encode receipt: %w", err)
	}

	png, err := qrcode.Encode(string(payload), s.level, s.size)
	if err != nil {
		return nil, fmt.Errorf("render receipt for booking %s: %w", bookingID, err)
	}

	return png, nil
}

func (s *qrcodeService) ParseReceiptQR(qrData string) (*service.ReceiptQRData, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("decode receipt: %w", err)
	}

	switch {
	case data.Type != receiptType:
		return nil, fmt.Errorf("not a receipt: type %q", data.Type)
	case data.TransactionID == "":
		return nil, fmt.Errorf("receipt has no transaction ID")
	}

	bookingID, err := uuid.Parse(data.BookingID)
	if err != nil {
		return nil, fmt.Errorf("receipt booking ID: %w", err)
	}

	return &service.ReceiptQRData{BookingID: bookingID, TransactionID: data.TransactionID}, nil
}
