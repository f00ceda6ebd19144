package repository

import (
	"context"
	"errors"

	"resale/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWishlistEntryNotFound is returned when a buyer has not saved the product.
var ErrWishlistEntryNotFound = errors.New("wishlist entry not found")

// WishlistRepository defines persistence operations for wishlist entries.
type WishlistRepository interface {
	Find(ctx context.Context, buyerEmail string, productID uuid.UUID) (*entity.WishlistEntry, error)

	// ListByBuyer returns entries with their Product populated.
	ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.WishlistEntry, error)

	Create(ctx context.Context, entry *entity.WishlistEntry) error
	Delete(ctx context.Context, buyerEmail string, productID uuid.UUID) error

	// DeleteByProduct removes every entry for a product and returns how many were removed.
	DeleteByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}
