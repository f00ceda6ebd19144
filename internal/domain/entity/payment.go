package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payment is an append-only record of a completed payment for a booking.
type Payment struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	ProductID     uuid.UUID
	BuyerEmail    string
	TransactionID string
	Amount        float64
	CreatedAt     time.Time
}
