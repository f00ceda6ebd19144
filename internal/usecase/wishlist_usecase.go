package usecase

import (
	"context"

	"resale/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase manages products buyers saved for later.
type WishlistUsecase interface {
	Add(ctx context.Context, callerEmail string, productID uuid.UUID) (*entity.WishlistEntry, error)
	List(ctx context.Context, callerEmail, email string) ([]*entity.WishlistEntry, error)
	Remove(ctx context.Context, callerEmail string, productID uuid.UUID) error

	// RemoveProduct drops a sold product from every wishlist and reports how many entries went.
	RemoveProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}
