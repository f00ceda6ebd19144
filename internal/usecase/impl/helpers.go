// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"time"

	"resale/config"
	"resale/internal/domain/entity"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/repository"

	"github.com/pkg/errors"
)

// repoErrorMappings translates persistence sentinels into application errors.
var repoErrorMappings = []struct {
	repoErr error
	appErr  *domainerrors.BaseError
}{
	{repository.ErrUserNotFound, domainerrors.ErrUserNotFound},
	{repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound},
	{repository.ErrProductNotFound, domainerrors.ErrProductNotFound},
	{repository.ErrBookingNotFound, domainerrors.ErrBookingNotFound},
	{repository.ErrWishlistEntryNotFound, domainerrors.ErrWishlistEntryNotFound},
}

// translateRepoError wraps err with message, swapping repository sentinels for their AppError.
func translateRepoError(err error, message string) error {
	if err == nil {
		return nil
	}
	for _, mapping := range repoErrorMappings {
		if errors.Is(err, mapping.repoErr) {
			return errors.Wrap(mapping.appErr, message)
		}
	}

	return errors.Wrap(err, message)
}

func storeTimeout(cfg *config.Config) time.Duration {
	if cfg != nil && cfg.Store != nil {
		return cfg.Store.Timeout
	}

	return 0
}

// withTimeout bounds ctx by timeout; a non-positive timeout only adds cancellation.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}

// isAdmin reports whether email belongs to an admin. Unknown emails are not admins.
func isAdmin(ctx context.Context, userRepo repository.UserRepository, email string) (bool, error) {
	user, err := userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to look up caller")
	}

	return user.HasRole(entity.RoleAdmin), nil
}
