package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"resale/config"
	deliverycontext "resale/internal/delivery/context"
	"resale/internal/domain/entity"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/repository"
	"resale/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	storeTimeout time.Duration
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		storeTimeout: storeTimeout(params.Config),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account for input.Email, or returns the existing one untouched.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleBuyer
	}
	if !role.IsSelfAssignable() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("role must be buyer or seller"))
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("email is required"))
	}

	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	existing, err := srv.userRepo.FindByEmail(storeCtx, email)
	if err == nil {
		srv.log(ctx).Debug("Signup replayed for existing account", slog.String("email", email))

		return &usecase.RegisterOutput{User: existing}, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up user")
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         input.Name,
		PhotoURL:     input.PhotoURL,
		Role:         role,
		Verification: entity.VerificationUnverified,
	}
	if err := srv.userRepo.Create(storeCtx, user); err != nil {
		// Lost a race with a concurrent signup for the same email.
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			existing, findErr := srv.userRepo.FindByEmail(storeCtx, email)
			if findErr != nil {
				return nil, errors.Wrap(findErr, "failed to load concurrently registered user")
			}

			return &usecase.RegisterOutput{User: existing}, nil
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("email", email), slog.String("role", role.String()))

	return &usecase.RegisterOutput{User: user, Created: true}, nil
}

// List returns every user, optionally narrowed to one role.
func (srv *userService) List(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	if role != "" && !role.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String()))
	}

	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	users, err := srv.userRepo.List(storeCtx, repository.UserFilter{Role: role})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) Get(ctx context.Context, callerEmail, email string) (*entity.User, error) {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	if callerEmail != email {
		admin, err := isAdmin(storeCtx, srv.userRepo, callerEmail)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, errors.WithStack(domainerrors.ErrForbidden)
		}
	}

	user, err := srv.userRepo.FindByEmail(storeCtx, email)
	if err != nil {
		return nil, translateRepoError(err, "failed to get user")
	}

	return user, nil
}

// HasRole backs the public role probes. Unknown emails simply hold no role.
func (srv *userService) HasRole(ctx context.Context, email string, role entity.Role) (bool, error) {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	user, err := srv.userRepo.FindByEmail(storeCtx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to look up user role")
	}

	return user.HasRole(role), nil
}

// Update applies admin changes to verification and role.
func (srv *userService) Update(ctx context.Context, email string, input *usecase.UpdateUserInput) (*entity.User, error) {
	if input.Role != nil && !input.Role.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown role " + input.Role.String()))
	}

	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	user, err := srv.userRepo.FindByEmail(storeCtx, email)
	if err != nil {
		return nil, translateRepoError(err, "failed to load user for update")
	}

	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Verified != nil {
		user.Verification = entity.VerificationUnverified
		if *input.Verified {
			user.Verification = entity.VerificationVerified
		}
	}

	if err := srv.userRepo.Update(storeCtx, user); err != nil {
		return nil, translateRepoError(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated",
		slog.String("email", email),
		slog.String("role", user.Role.String()),
		slog.Bool("verified", user.IsVerified()))

	return user, nil
}

func (srv *userService) Delete(ctx context.Context, id uuid.UUID) error {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	if err := srv.userRepo.Delete(storeCtx, id); err != nil {
		return translateRepoError(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", id.String()))

	return nil
}
