// Package repository holds the persistence contracts the usecases depend on.
// Implementations live under internal/infra/persistence.
package repository

import (
	"context"
	"errors"

	"resale/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned by lookups and deletes that match no account.
var ErrUserNotFound = errors.New("user not found")

// UserFilter narrows user listings. An empty Role lists every account.
type UserFilter struct {
	Role entity.Role
}

// UserRepository stores marketplace accounts keyed by ID and unique email.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmails skips emails with no account instead of failing.
	FindByEmails(ctx context.Context, emails []string) ([]*entity.User, error)

	// List orders newest first.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)

	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
