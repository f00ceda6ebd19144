package handler

import (
	"log/slog"
	"net/http"

	domainerrors "resale/internal/domain/errors"
	"resale/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TokenHandlerParams holds dependencies for TokenHandler, injected by Fx.
type TokenHandlerParams struct {
	fx.In

	TokenUC usecase.TokenUsecase
	Logger  *slog.Logger
}

// TokenHandler issues access tokens.
type TokenHandler struct {
	tokenUC usecase.TokenUsecase
	logger  *slog.Logger
}

// NewTokenHandler is the constructor for TokenHandler
func NewTokenHandler(params TokenHandlerParams) *TokenHandler {
	return &TokenHandler{
		tokenUC: params.TokenUC,
		logger:  params.Logger,
	}
}

// TokenResponse is the body of GET /jwt. It is not wrapped in the response envelope.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// IssueToken handles GET /jwt?email=
func (h *TokenHandler) IssueToken(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusForbidden, TokenResponse{})
	}

	token, err := h.tokenUC.IssueToken(c.Request().Context(), email)
	if errors.Is(err, domainerrors.ErrUnknownUser) {
		return c.JSON(http.StatusForbidden, TokenResponse{})
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, TokenResponse{AccessToken: token})
}
