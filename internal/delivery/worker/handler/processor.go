package handler

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "resale/internal/delivery/context"
	"resale/internal/domain/constants"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/service"
	"resale/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// retryableError wraps an error to indicate the event should be redelivered
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError reports whether a processing failure should be redelivered
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PaymentEventProcessorParams holds dependencies for the processor
type PaymentEventProcessorParams struct {
	fx.In

	Logger     *slog.Logger
	BookingUC  usecase.BookingUsecase
	WishlistUC usecase.WishlistUsecase
}

// PaymentEventProcessor applies the follow-up work for a completed payment.
// Every step is idempotent so redelivered events are harmless.
type PaymentEventProcessor struct {
	logger     *slog.Logger
	bookingUC  usecase.BookingUsecase
	wishlistUC usecase.WishlistUsecase
}

// NewPaymentEventProcessor creates a new PaymentEventProcessor
func NewPaymentEventProcessor(params PaymentEventProcessorParams) *PaymentEventProcessor {
	return &PaymentEventProcessor{
		logger:     params.Logger,
		bookingUC:  params.BookingUC,
		wishlistUC: params.WishlistUC,
	}
}

// Process reconciles the booking and clears the sold product from every wishlist.
// Malformed events are rejected without retry; store failures are retryable.
func (p *PaymentEventProcessor) Process(ctx context.Context, event *service.PaymentCompletedEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	if event.Type != constants.EventTypePaymentCompleted {
		logger.Info("[Worker] Ignoring event", slog.String("type", event.Type))

		return nil
	}

	bookingID, err := uuid.Parse(event.BookingID)
	if err != nil {
		return errors.Wrap(err, "invalid booking id")
	}
	productID, err := uuid.Parse(event.ProductID)
	if err != nil {
		return errors.Wrap(err, "invalid product id")
	}

	if _, err := p.bookingUC.MarkPaid(ctx, bookingID, event.TransactionID); err != nil {
		if errors.Is(err, domainerrors.ErrBookingNotFound) {
			return errors.Wrap(err, "booking vanished before reconciliation")
		}

		return newRetryableError(errors.Wrap(err, "failed to reconcile booking"))
	}

	removed, err := p.wishlistUC.RemoveProduct(ctx, productID)
	if err != nil {
		return newRetryableError(errors.Wrap(err, "failed to clear wishlists"))
	}

	logger.Info("[Worker] Payment event processed",
		slog.String("payment_id", event.PaymentID),
		slog.String("booking_id", event.BookingID),
		slog.Int64("wishlist_entries_removed", removed),
	)

	return nil
}
