package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistEntry is a product a buyer saved for later. It is independent of booking state.
type WishlistEntry struct {
	ID         uuid.UUID
	BuyerEmail string
	ProductID  uuid.UUID
	Product    *Product // Populated on reads.
	CreatedAt  time.Time
}
