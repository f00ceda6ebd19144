package usecase

import (
	"context"

	"resale/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordPaymentInput is a buyer's confirmation that a booking was paid.
type RecordPaymentInput struct {
	CallerEmail   string
	BookingID     uuid.UUID
	ProductID     uuid.UUID
	TransactionID string
	Amount        float64
}

// RecordPaymentOutput returns the stored payment. Replayed is true when the booking was already paid.
type RecordPaymentOutput struct {
	Payment  *entity.Payment
	Replayed bool
}

// PaymentUsecase records payments and talks to the payment processor.
type PaymentUsecase interface {
	// RecordPayment appends the payment, marks the booking paid and the product sold in one transaction.
	RecordPayment(ctx context.Context, input *RecordPaymentInput) (*RecordPaymentOutput, error)

	// CreatePaymentIntent returns the processor's client secret for price in major units.
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
}
