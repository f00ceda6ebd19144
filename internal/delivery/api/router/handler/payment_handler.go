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

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler records payments and brokers payment intents.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// PaymentIntentRequest is the body of POST /create-payment-intent
type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

// PaymentIntentResponse carries the processor's client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentRequest is the body of POST /payments
type RecordPaymentRequest struct {
	Email         string  `json:"email" validate:"omitempty,email"`
	BookingID     string  `json:"bookingId" validate:"required,uuid"`
	ProductID     string  `json:"productId" validate:"required,uuid"`
	TransactionID string  `json:"transactionId" validate:"required"`
	Price         float64 `json:"price" validate:"gt=0"`
}

// CreatePaymentIntent handles POST /create-payment-intent
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment intent input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	secret, err := h.paymentUC.CreatePaymentIntent(c.Request().Context(), req.Price)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PaymentIntentResponse{ClientSecret: secret})
}

// RecordPayment handles POST /payments. A replay for an already paid booking answers 200 instead of 201.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	callerEmail, ok := middleware.GetCallerEmail(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Unauthorized access")
	}

	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Email != "" && req.Email != callerEmail {
		return response.Forbidden(c, "FORBIDDEN", "Forbidden access")
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	output, err := h.paymentUC.RecordPayment(c.Request().Context(), &usecase.RecordPaymentInput{
		CallerEmail:   callerEmail,
		BookingID:     bookingID,
		ProductID:     productID,
		TransactionID: req.TransactionID,
		Amount:        req.Price,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if output.Replayed {
		status = http.StatusOK
	}

	return response.Success(c, status, toPaymentResponse(output.Payment))
}
