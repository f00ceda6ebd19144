package postgres

import (
	"context"

	"resale/internal/domain/entity"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/repository"
	"resale/internal/infra/persistence/model"
	"resale/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type wishlistRepository struct {
	q *query.Query
}

// NewWishlistRepository creates a new wishlist repository instance
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{q: query.Use(db)}
}

// Find retrieves a single wishlist entry.
func (repo *wishlistRepository) Find(ctx context.Context, buyerEmail string, productID uuid.UUID) (*entity.WishlistEntry, error) {
	w := repo.q.WishlistModel
	entryM, err := w.WithContext(ctx).
		Preload(w.Product).
		Where(w.BuyerEmail.Eq(buyerEmail), w.ProductID.Eq(productID)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishlistEntryNotFound
		}

		return nil, domainerrors.FromStoreError(err, "failed to find wishlist entry")
	}

	return toWishlistDomain(entryM), nil
}

// ListByBuyer returns a buyer's wishlist with products preloaded, newest first.
func (repo *wishlistRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.WishlistEntry, error) {
	w := repo.q.WishlistModel
	entryMs, err := w.WithContext(ctx).
		Preload(w.Product).
		Where(w.BuyerEmail.Eq(buyerEmail)).
		Order(w.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, domainerrors.FromStoreError(err, "failed to list wishlist")
	}

	entries := make([]*entity.WishlistEntry, 0, len(entryMs))
	for _, entryM := range entryMs {
		entries = append(entries, toWishlistDomain(entryM))
	}

	return entries, nil
}

// Create saves a product to a buyer's wishlist. Saving the same product twice is a no-op.
func (repo *wishlistRepository) Create(ctx context.Context, entry *entity.WishlistEntry) error {
	entryM := &model.WishlistModel{
		ID:         entry.ID,
		BuyerEmail: entry.BuyerEmail,
		ProductID:  entry.ProductID,
	}

	if err := repo.q.WishlistModel.WithContext(ctx).Create(entryM); err != nil {
		if isUniqueConstraintViolation(err) {
			existing, findErr := repo.Find(ctx, entry.BuyerEmail, entry.ProductID)
			if findErr != nil {
				return findErr
			}
			entry.ID = existing.ID
			entry.CreatedAt = existing.CreatedAt

			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.FromStoreError(err, "failed to create wishlist entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// Delete removes a product from a buyer's wishlist.
func (repo *wishlistRepository) Delete(ctx context.Context, buyerEmail string, productID uuid.UUID) error {
	w := repo.q.WishlistModel
	result, err := w.WithContext(ctx).
		Where(w.BuyerEmail.Eq(buyerEmail), w.ProductID.Eq(productID)).
		Delete()
	if err != nil {
		return domainerrors.FromStoreError(err, "failed to delete wishlist entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistEntryNotFound
	}

	return nil
}

// DeleteByProduct removes the product from every wishlist.
func (repo *wishlistRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	w := repo.q.WishlistModel
	result, err := w.WithContext(ctx).Where(w.ProductID.Eq(productID)).Delete()
	if err != nil {
		return 0, domainerrors.FromStoreError(err, "failed to clear product from wishlists")
	}

	return result.RowsAffected, nil
}

func toWishlistDomain(data *model.WishlistModel) *entity.WishlistEntry {
	if data == nil {
		return nil
	}

	return &entity.WishlistEntry{
		ID:         data.ID,
		BuyerEmail: data.BuyerEmail,
		ProductID:  data.ProductID,
		Product:    toProductDomain(data.Product),
		CreatedAt:  data.CreatedAt,
	}
}
