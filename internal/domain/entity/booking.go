package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking records a buyer's intent to purchase a product, pending payment.
type Booking struct {
	ID              uuid.UUID
	BuyerEmail      string
	ProductID       uuid.UUID
	ProductName     string
	Price           float64
	Phone           string
	MeetingLocation string
	Paid            bool
	TransactionID   *string // Set once, when the booking is paid.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOwnedBy reports whether email placed the booking.
func (b *Booking) IsOwnedBy(email string) bool {
	return b.BuyerEmail == email
}
