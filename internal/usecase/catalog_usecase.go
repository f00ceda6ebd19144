package usecase

import (
	"context"

	"resale/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data a seller supplies for a new listing.
type CreateProductInput struct {
	CategoryID    uuid.UUID
	Name          string
	Description   string
	Condition     string
	Location      string
	ImageURL      string
	Phone         string
	Price         float64
	OriginalPrice float64
	YearsOfUse    int
}

// CatalogUsecase covers categories and product listings.
type CatalogUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListByCategory returns unsold products in the category with their seller's verification.
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.ProductListing, error)

	// ListAdvertised returns advertised, unsold products with their seller's verification.
	ListAdvertised(ctx context.Context) ([]*entity.ProductListing, error)

	ListReported(ctx context.Context) ([]*entity.Product, error)
	ListBySeller(ctx context.Context, callerEmail string) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, callerEmail string, input *CreateProductInput) (*entity.Product, error)
	Advertise(ctx context.Context, callerEmail string, productID uuid.UUID) error
	Report(ctx context.Context, productID uuid.UUID) error

	// DeleteProduct removes a product. Only its owner or an admin may do so.
	DeleteProduct(ctx context.Context, callerEmail string, productID uuid.UUID) error
}
