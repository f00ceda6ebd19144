// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"resale/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Email    string
	Name     string
	PhotoURL string
	Role     entity.Role // buyer or seller; empty means buyer
}

// UpdateUserInput carries admin changes. Nil fields are left untouched.
type UpdateUserInput struct {
	Role     *entity.Role
	Verified *bool
}

// --- Output DTOs ---

// RegisterOutput returns the user and whether this call created it.
type RegisterOutput struct {
	User    *entity.User
	Created bool
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	List(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// Get returns the user for email. Callers other than the user need the admin role.
	Get(ctx context.Context, callerEmail, email string) (*entity.User, error)

	// HasRole reports whether email holds role. Unknown emails report false.
	HasRole(ctx context.Context, email string, role entity.Role) (bool, error)

	Update(ctx context.Context, email string, input *UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
