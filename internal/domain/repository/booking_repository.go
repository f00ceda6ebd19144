package repository

import (
	"context"
	"errors"

	"resale/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrBookingNotFound is returned when a booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrDuplicateActiveBooking is returned when the unique index on unpaid
	// (buyer_email, product_id) rejects an insert.
	ErrDuplicateActiveBooking = errors.New("active booking already exists")
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// FindByIDForUpdate loads the booking and locks its row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// FindActive returns the unpaid booking for (buyerEmail, productID), or ErrBookingNotFound.
	FindActive(ctx context.Context, buyerEmail string, productID uuid.UUID) (*entity.Booking, error)

	ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Booking, error)
	Create(ctx context.Context, booking *entity.Booking) error

	// MarkPaid flips paid to true only when it is still false.
	// It reports whether a row changed; false means the booking was already paid.
	MarkPaid(ctx context.Context, id uuid.UUID, transactionID string) (bool, error)
}
