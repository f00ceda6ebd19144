package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "resale/internal/delivery/context"
	"resale/internal/domain/entity"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/service"
	"resale/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	UserUC       usecase.UserUsecase
	Logger       *slog.Logger
}

// AuthMiddleware authenticates bearer tokens and gates routes by stored role.
// It never mutates users.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userUC   usecase.UserUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		userUC:   params.UserUC,
		logger:   params.Logger,
	}
}

// Authenticate validates the bearer token and records the verified email as the caller.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected bearer token", slog.Any("error", err))

			return errors.WithStack(domainerrors.ErrInvalidToken)
		}

		deliverycontext.SetCallerEmail(c, claims.Email)

		return next(c)
	}
}

// RequireRole checks the caller's stored role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := deliverycontext.GetCallerEmail(c)
			if !ok {
				return errors.WithStack(domainerrors.ErrUnauthenticated)
			}

			allowed, err := m.userUC.HasRole(c.Request().Context(), email, role)
			if err != nil {
				return errors.Wrap(err, "failed to check caller role")
			}
			if !allowed {
				return errors.WithStack(domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// GetCallerEmail returns the email verified by Authenticate.
func GetCallerEmail(c echo.Context) (string, bool) {
	return deliverycontext.GetCallerEmail(c)
}
