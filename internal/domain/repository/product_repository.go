package repository

import (
	"context"
	"errors"

	"resale/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows product listings. Nil pointers mean "any".
type ProductFilter struct {
	OwnerEmail string
	CategoryID *uuid.UUID
	Sold       *bool
	Advertised *bool
	Reported   *bool
}

// ProductRepository defines persistence operations for products.
// Flag setters never upsert: they return ErrProductNotFound for unknown IDs.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDForUpdate loads the product and locks its row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	SetAdvertised(ctx context.Context, id uuid.UUID, advertised bool) error
	SetReported(ctx context.Context, id uuid.UUID, reported bool) error

	// MarkSold sets sold=true and advertised=false in a single statement.
	MarkSold(ctx context.Context, id uuid.UUID) error

	Delete(ctx context.Context, id uuid.UUID) error
}
