package repository

import (
	"context"
	"errors"

	"resale/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository reads product categories.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
}
