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

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

// BookingHandler serves the booking ledger.
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

// CreateBookingRequest is the body of POST /bookings. Product name and price are read from the catalog.
type CreateBookingRequest struct {
	Email           string `json:"email" validate:"omitempty,email"`
	ProductID       string `json:"productId" validate:"required,uuid"`
	Phone           string `json:"phone" validate:"required"`
	MeetingLocation string `json:"meetingLocation" validate:"required"`
}

// Create handles POST /bookings
func (h *BookingHandler) Create(c echo.Context) error {
	callerEmail, ok := middleware.GetCallerEmail(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Unauthorized access")
	}

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	// A client-supplied email must match the token.
	if req.Email != "" && req.Email != callerEmail {
		return response.Forbidden(c, "FORBIDDEN", "Forbidden access")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	booking, err := h.bookingUC.Create(c.Request().Context(), &usecase.CreateBookingInput{
		BuyerEmail:      callerEmail,
		ProductID:       productID,
		Phone:           req.Phone,
		MeetingLocation: req.MeetingLocation,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBookingResponse(booking))
}

// ListByBuyer handles GET /bookings?email=
func (h *BookingHandler) ListByBuyer(c echo.Context) error {
	callerEmail, ok := middleware.GetCallerEmail(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Unauthorized access")
	}

	email := c.QueryParam("email")
	if email == "" {
		email = callerEmail
	}

	bookings, err := h.bookingUC.ListByBuyer(c.Request().Context(), callerEmail, email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, toBookingResponse(booking))
	}

	return response.Success(c, http.StatusOK, out)
}

// Get handles GET /bookings/:id
func (h *BookingHandler) Get(c echo.Context) error {
	callerEmail, ok := middleware.GetCallerEmail(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Unauthorized access")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	booking, err := h.bookingUC.Get(c.Request().Context(), callerEmail, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookingResponse(booking))
}

// ReceiptQR handles GET /bookings/:id/qr
func (h *BookingHandler) ReceiptQR(c echo.Context) error {
	callerEmail, ok := middleware.GetCallerEmail(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Unauthorized access")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	png, err := h.bookingUC.ReceiptQR(c.Request().Context(), callerEmail, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}
