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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{q: query.Use(db)}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u := repo.q.UserModel
	userM, err := u.WithContext(ctx).Where(u.ID.Eq(id)).First()
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.FromStoreError(err, "failed to find user by id")
	}

	return toUserDomain(userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := repo.q.UserModel
	userM, err := u.WithContext(ctx).Where(u.Email.Eq(email)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.FromStoreError(err, "failed to find user by email")
	}

	return toUserDomain(userM), nil
}

// FindByEmails retrieves every user whose email is in the list.
func (repo *userRepository) FindByEmails(ctx context.Context, emails []string) ([]*entity.User, error) {
	if len(emails) == 0 {
		return []*entity.User{}, nil
	}

	u := repo.q.UserModel
	userMs, err := u.WithContext(ctx).Where(u.Email.In(emails...)).Find()
	if err != nil {
		return nil, domainerrors.FromStoreError(err, "failed to find users by email")
	}

	return toUserDomainList(userMs), nil
}

// List returns users matching the filter, newest first.
func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	u := repo.q.UserModel
	do := u.WithContext(ctx).Order(u.CreatedAt.Desc())
	if filter.Role != "" {
		do = do.Where(u.Role.Eq(filter.Role.String()))
	}

	userMs, err := do.Find()
	if err != nil {
		return nil, domainerrors.FromStoreError(err, "failed to list users")
	}

	return toUserDomainList(userMs), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user information")
		}

		return domainerrors.FromStoreError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies the mutable fields of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	u := repo.q.UserModel
	result, err := u.WithContext(ctx).
		Where(u.ID.Eq(user.ID)).
		Updates(map[string]any{
			"name":         user.Name,
			"photo_url":    user.PhotoURL,
			"role":         user.Role.String(),
			"verification": string(user.Verification),
		})
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user information")
		}

		return domainerrors.FromStoreError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user by ID.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	u := repo.q.UserModel
	result, err := u.WithContext(ctx).Where(u.ID.Eq(id)).Delete()
	if err != nil {
		return domainerrors.FromStoreError(err, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PhotoURL:     data.PhotoURL,
		Role:         entity.Role(data.Role),
		Verification: entity.VerificationStatus(data.Verification),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toUserDomainList(data []*model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(data))
	for _, userM := range data {
		users = append(users, toUserDomain(userM))
	}

	return users
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	verification := data.Verification
	if verification == "" {
		verification = entity.VerificationUnverified
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PhotoURL:     data.PhotoURL,
		Role:         data.Role.String(),
		Verification: string(verification),
	}
}
