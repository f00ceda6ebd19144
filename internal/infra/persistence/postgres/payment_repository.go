package postgres

import (
	"context"

	"resale/internal/domain/entity"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/repository"
	"resale/internal/infra/persistence/model"
	"resale/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type paymentRepository struct {
	q *query.Query
}

// NewPaymentRepository creates a new payment repository instance
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{q: query.Use(db)}
}

// Create appends a payment record. A second payment for the same booking violates the unique index.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := &model.PaymentModel{
		ID:            payment.ID,
		BookingID:     payment.BookingID,
		ProductID:     payment.ProductID,
		BuyerEmail:    payment.BuyerEmail,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
	}

	if err := repo.q.PaymentModel.WithContext(ctx).Create(paymentM); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTransactionFailed.WrapMessage("booking already has a payment")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("payment amount must be positive")
		}

		return domainerrors.FromStoreError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// FindByBookingID retrieves the payment recorded for a booking.
func (repo *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	p := repo.q.PaymentModel
	paymentM, err := p.WithContext(ctx).Where(p.BookingID.Eq(bookingID)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, domainerrors.FromStoreError(err, "failed to find payment")
	}

	return &entity.Payment{
		ID:            paymentM.ID,
		BookingID:     paymentM.BookingID,
		ProductID:     paymentM.ProductID,
		BuyerEmail:    paymentM.BuyerEmail,
		TransactionID: paymentM.TransactionID,
		Amount:        paymentM.Amount,
		CreatedAt:     paymentM.CreatedAt,
	}, nil
}
