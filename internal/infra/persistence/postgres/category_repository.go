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

type categoryRepository struct {
	q *query.Query
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{q: query.Use(db)}
}

// FindAll returns every category ordered by name.
func (repo *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	c := repo.q.CategoryModel
	categoryMs, err := c.WithContext(ctx).Order(c.Name.Asc()).Find()
	if err != nil {
		return nil, domainerrors.FromStoreError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for _, categoryM := range categoryMs {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// FindByID retrieves a category by its ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	c := repo.q.CategoryModel
	categoryM, err := c.WithContext(ctx).Where(c.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, domainerrors.FromStoreError(err, "failed to find category")
	}

	return toCategoryDomain(categoryM), nil
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:   data.ID,
		Name: data.Name,
	}
}
