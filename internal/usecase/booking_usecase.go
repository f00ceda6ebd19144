package usecase

import (
	"context"

	"resale/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBookingInput defines a buyer's booking request. Name and price come from the stored product.
type CreateBookingInput struct {
	BuyerEmail      string
	ProductID       uuid.UUID
	Phone           string
	MeetingLocation string
}

// BookingUsecase is the booking ledger.
type BookingUsecase interface {
	// Create records an unpaid booking. A second unpaid booking for the same buyer and product is a conflict.
	Create(ctx context.Context, input *CreateBookingInput) (*entity.Booking, error)

	Get(ctx context.Context, callerEmail string, id uuid.UUID) (*entity.Booking, error)
	ListByBuyer(ctx context.Context, callerEmail, email string) ([]*entity.Booking, error)

	// MarkPaid is idempotent; an already paid booking keeps its original transaction id.
	MarkPaid(ctx context.Context, id uuid.UUID, transactionID string) (*entity.Booking, error)

	// ReceiptQR renders a PNG proving payment of a paid booking.
	ReceiptQR(ctx context.Context, callerEmail string, id uuid.UUID) ([]byte, error)
}
