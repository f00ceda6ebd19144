package impl

import (
	"context"
	"log/slog"
	"time"

	"resale/config"
	deliverycontext "resale/internal/delivery/context"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/repository"
	"resale/internal/domain/service"
	"resale/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type tokenService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	storeTimeout time.Duration
	logger       *slog.Logger
}

// TokenServiceParams holds dependencies for TokenService, injected by Fx.
type TokenServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewTokenService creates the token usecase
func NewTokenService(params TokenServiceParams) usecase.TokenUsecase {
	return &tokenService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		storeTimeout: storeTimeout(params.Config),
		logger:       params.Logger,
	}
}

func (srv *tokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueToken signs an access token for a registered email.
func (srv *tokenService) IssueToken(ctx context.Context, email string) (string, error) {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	if _, err := srv.userRepo.FindByEmail(storeCtx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Token requested for unknown email", slog.String("email", email))

			return "", errors.WithStack(domainerrors.ErrUnknownUser)
		}

		return "", errors.Wrap(err, "failed to look up user for token")
	}

	token, err := srv.tokenService.GenerateToken(email)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Access token issued", slog.String("email", email))

	return token, nil
}
