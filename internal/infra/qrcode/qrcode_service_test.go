package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		level     string
		wantSize  int
		wantLevel qrcode.RecoveryLevel
	}{
		{"low", 128, "L", 128, qrcode.Low},
		{"medium", 256, "M", 256, qrcode.Medium},
		{"quartile", 256, "Q", 256, qrcode.High},
		{"high", 512, "H", 512, qrcode.Highest},
		{"unknown level", 256, "invalid", 256, qrcode.Medium},
		{"non-positive size", 0, "M", defaultSize, qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ok := NewQRCodeService(tt.size, tt.level).(*qrcodeService)
			require.True(t, ok)
			assert.Equal(t, tt.wantSize, svc.size)
			assert.Equal(t, tt.wantLevel, svc.level)
		})
	}
}

func TestQRCodeService_GenerateReceiptQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateReceiptQR(uuid.New(), "TXN1")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(qrBytes), 4)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseReceiptQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	bookingID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		BookingID:     bookingID.String(),
		TransactionID: "TXN1",
		Type:          "receipt",
	})
	require.NoError(t, err)

	data, err := service.ParseReceiptQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, bookingID, data.BookingID)
	assert.Equal(t, "TXN1", data.TransactionID)
}

func TestQRCodeService_ParseReceiptQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name string
		data string
	}{
		{"not json", "not-json"},
		{"wrong type", `{"booking_id":"` + uuid.NewString() + `","transaction_id":"TXN1","type":"subscription"}`},
		{"bad booking id", `{"booking_id":"nope","transaction_id":"TXN1","type":"receipt"}`},
		{"missing transaction", `{"booking_id":"` + uuid.NewString() + `","type":"receipt"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := service.ParseReceiptQR(tt.data)
			assert.Error(t, err)
			assert.Nil(t, data)
		})
	}
}
