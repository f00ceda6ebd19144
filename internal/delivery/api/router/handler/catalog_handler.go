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

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves categories and products.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest is the body of POST /products
type CreateProductRequest struct {
	CategoryID    string  `json:"categoryId" validate:"required,uuid"`
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Condition     string  `json:"condition"`
	Location      string  `json:"location"`
	ImageURL      string  `json:"image"`
	Phone         string  `json:"phone"`
	Price         float64 `json:"resalePrice" validate:"gt=0"`
	OriginalPrice float64 `json:"originalPrice" validate:"gte=0"`
	YearsOfUse    int     `json:"yearsOfUse" validate:"gte=0"`
}

// ListCategories handles GET /categories
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, &CategoryResponse{ID: category.ID.String(), Name: category.Name})
	}

	return response.Success(c, http.StatusOK, out)
}

// ListByCategory handles GET /products/categories/:id
func (h *CatalogHandler) ListByCategory(c echo.Context) error {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	listings, err := h.catalogUC.ListByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingResponses(listings))
}

// ListAdvertised handles GET /products/advertise
func (h *CatalogHandler) ListAdvertised(c echo.Context) error {
	listings, err := h.catalogUC.ListAdvertised(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingResponses(listings))
}

// ListReported handles GET /products/report
func (h *CatalogHandler) ListReported(c echo.Context) error {
	products, err := h.catalogUC.ListReported(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products))
}

// ListMine handles GET /products for the authenticated seller
func (h *CatalogHandler) ListMine(c echo.Context) error {
	callerEmail, ok := middleware.GetCallerEmail(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Unauthorized access")
	}

	products, err := h.catalogUC.ListBySeller(c.Request().Context(), callerEmail)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products))
}

// CreateProduct handles POST /products
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	callerEmail, ok := middleware.GetCallerEmail(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Unauthorized access")
	}

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), callerEmail, &usecase.CreateProductInput{
		CategoryID:    categoryID,
		Name:          req.Name,
		Description:   req.Description,
		Condition:     req.Condition,
		Location:      req.Location,
		ImageURL:      req.ImageURL,
		Phone:         req.Phone,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		YearsOfUse:    req.YearsOfUse,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product))
}

// Advertise handles PUT /products?id=
func (h *CatalogHandler) Advertise(c echo.Context) error {
	callerEmail, ok := middleware.GetCallerEmail(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Unauthorized access")
	}

	productID, err := uuid.Parse(c.QueryParam("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.catalogUC.Advertise(c.Request().Context(), callerEmail, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product advertised"})
}

// Report handles PUT /products/report/:id
func (h *CatalogHandler) Report(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.catalogUC.Report(c.Request().Context(), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product reported"})
}

// DeleteProduct handles DELETE /products/:id
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	callerEmail, ok := middleware.GetCallerEmail(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Unauthorized access")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), callerEmail, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"})
}
