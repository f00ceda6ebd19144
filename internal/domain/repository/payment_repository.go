package repository

import (
	"context"
	"errors"

	"resale/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is returned when no payment exists for the lookup key.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository appends and reads payment records.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)
}
