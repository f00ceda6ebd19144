package handler

import (
	"log/slog"
	"net/http"

	"resale/internal/delivery/api/middleware"
	"resale/internal/delivery/api/response"
	"resale/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WishlistHandlerParams holds dependencies for WishlistHandler, injected by Fx.
type WishlistHandlerParams struct {
	fx.In

	WishlistUC usecase.WishlistUsecase
	Logger     *slog.Logger
}

// WishlistHandler serves saved products.
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
	logger     *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler
func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{
		wishlistUC: params.WishlistUC,
		logger:     params.Logger,
	}
}

// AddWishlistRequest is the body of POST /wishlists
type AddWishlistRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
}

// Add handles POST /wishlists
func (h *WishlistHandler) Add(c echo.Context) error {
	callerEmail, ok := middleware.GetCallerEmail(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Unauthorized access")
	}

	var req AddWishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	entry, err := h.wishlistUC.Add(c.Request().Context(), callerEmail, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toWishlistResponse(entry))
}

// List handles GET /wishlists?email=
func (h *WishlistHandler) List(c echo.Context) error {
	callerEmail, ok := middleware.GetCallerEmail(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Unauthorized access")
	}

	email := c.QueryParam("email")
	if email == "" {
		email = callerEmail
	}

	entries, err := h.wishlistUC.List(c.Request().Context(), callerEmail, email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*WishlistResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toWishlistResponse(entry))
	}

	return response.Success(c, http.StatusOK, out)
}

// Remove handles DELETE /wishlists?productId=
func (h *WishlistHandler) Remove(c echo.Context) error {
	callerEmail, ok := middleware.GetCallerEmail(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Unauthorized access")
	}

	productID, err := uuid.Parse(c.QueryParam("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.wishlistUC.Remove(c.Request().Context(), callerEmail, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
