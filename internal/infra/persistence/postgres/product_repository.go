package postgres

import (
	"context"
	"database/sql/driver"

	"resale/internal/domain/entity"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/repository"
	"resale/internal/infra/persistence/model"
	"resale/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type productRepository struct {
	q *query.Query
}

// NewProductRepository creates a new product repository instance
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{q: query.Use(db)}
}

// FindByID retrieves a product by its ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p := repo.q.ProductModel
	productM, err := p.WithContext(ctx).Where(p.ID.Eq(id)).First()

	return toProductResult(productM, err, "failed to find product")
}

// FindByIDForUpdate retrieves a product and holds a row lock until the transaction ends.
func (repo *productRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p := repo.q.ProductModel
	productM, err := p.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where(p.ID.Eq(id)).
		First()

	return toProductResult(productM, err, "failed to lock product")
}

func toProductResult(productM *model.ProductModel, err error, details string) (*entity.Product, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.FromStoreError(err, details)
	}

	return toProductDomain(productM), nil
}

// FindByIDs retrieves the products with the given IDs. Unknown IDs are skipped.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	values := make([]driver.Valuer, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}

	p := repo.q.ProductModel
	productMs, err := p.WithContext(ctx).Where(p.ID.In(values...)).Find()
	if err != nil {
		return nil, domainerrors.FromStoreError(err, "failed to find products")
	}

	return toProductDomainList(productMs), nil
}

// List returns products matching the filter, newest first.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	p := repo.q.ProductModel
	do := p.WithContext(ctx).Order(p.CreatedAt.Desc())
	if filter.OwnerEmail != "" {
		do = do.Where(p.OwnerEmail.Eq(filter.OwnerEmail))
	}
	if filter.CategoryID != nil {
		do = do.Where(p.CategoryID.Eq(*filter.CategoryID))
	}
	if filter.Sold != nil {
		do = do.Where(p.Sold.Is(*filter.Sold))
	}
	if filter.Advertised != nil {
		do = do.Where(p.Advertised.Is(*filter.Advertised))
	}
	if filter.Reported != nil {
		do = do.Where(p.Reported.Is(*filter.Reported))
	}

	productMs, err := do.Find()
	if err != nil {
		return nil, domainerrors.FromStoreError(err, "failed to list products")
	}

	return toProductDomainList(productMs), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.q.ProductModel.WithContext(ctx).Create(productM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("unknown category")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product information")
		}

		return domainerrors.FromStoreError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// SetAdvertised updates the advertised flag. Unknown IDs yield ErrProductNotFound.
func (repo *productRepository) SetAdvertised(ctx context.Context, id uuid.UUID, advertised bool) error {
	return repo.updateFlags(ctx, id, map[string]any{"advertised": advertised}, "failed to update advertised flag")
}

// SetReported updates the reported flag. Unknown IDs yield ErrProductNotFound.
func (repo *productRepository) SetReported(ctx context.Context, id uuid.UUID, reported bool) error {
	return repo.updateFlags(ctx, id, map[string]any{"reported": reported}, "failed to update reported flag")
}

// MarkSold marks the product sold and withdraws its advertisement.
func (repo *productRepository) MarkSold(ctx context.Context, id uuid.UUID) error {
	return repo.updateFlags(ctx, id, map[string]any{"sold": true, "advertised": false}, "failed to mark product sold")
}

func (repo *productRepository) updateFlags(ctx context.Context, id uuid.UUID, values map[string]any, details string) error {
	p := repo.q.ProductModel
	result, err := p.WithContext(ctx).Where(p.ID.Eq(id)).Updates(values)
	if err != nil {
		return domainerrors.FromStoreError(err, details)
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	p := repo.q.ProductModel
	result, err := p.WithContext(ctx).Where(p.ID.Eq(id)).Delete()
	if err != nil {
		return domainerrors.FromStoreError(err, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		OwnerEmail:    data.OwnerEmail,
		CategoryID:    data.CategoryID,
		Name:          data.Name,
		Description:   data.Description,
		Condition:     data.Condition,
		Location:      data.Location,
		ImageURL:      data.ImageURL,
		Phone:         data.Phone,
		Price:         data.Price,
		OriginalPrice: data.OriginalPrice,
		YearsOfUse:    data.YearsOfUse,
		Sold:          data.Sold,
		Advertised:    data.Advertised,
		Reported:      data.Reported,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toProductDomainList(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:            data.ID,
		OwnerEmail:    data.OwnerEmail,
		CategoryID:    data.CategoryID,
		Name:          data.Name,
		Description:   data.Description,
		Condition:     data.Condition,
		Location:      data.Location,
		ImageURL:      data.ImageURL,
		Phone:         data.Phone,
		Price:         data.Price,
		OriginalPrice: data.OriginalPrice,
		YearsOfUse:    data.YearsOfUse,
		Sold:          data.Sold,
		Advertised:    data.Advertised,
		Reported:      data.Reported,
	}
}
