package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a used laptop listed by a seller.
type Product struct {
	ID            uuid.UUID
	OwnerEmail    string // Seller who listed the product.
	CategoryID    uuid.UUID
	Name          string
	Description   string
	Condition     string // Free-form grade such as "excellent", "good", "fair".
	Location      string
	ImageURL      string
	Phone         string
	Price         float64 // Asking (resale) price in major currency units.
	OriginalPrice float64
	YearsOfUse    int
	Sold          bool
	Advertised    bool
	Reported      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsOwnedBy reports whether email listed the product.
func (p *Product) IsOwnedBy(email string) bool {
	return p.OwnerEmail == email
}

// ProductListing is the buyer-facing view of a product joined with its seller's verification at read time.
type ProductListing struct {
	Product        *Product
	SellerName     string
	SellerVerified bool
}
