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
	"gorm.io/gorm/clause"
)

// activeBookingIndex enforces one unpaid booking per buyer and product.
const activeBookingIndex = "idx_bookings_active"

type bookingRepository struct {
	q *query.Query
}

// NewBookingRepository creates a new booking repository instance
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{q: query.Use(db)}
}

// FindByID retrieves a booking by its ID.
func (repo *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	b := repo.q.BookingModel
	bookingM, err := b.WithContext(ctx).Where(b.ID.Eq(id)).First()

	return toBookingResult(bookingM, err, "failed to find booking")
}

// FindByIDForUpdate retrieves a booking and holds a row lock until the transaction ends.
func (repo *bookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	b := repo.q.BookingModel
	bookingM, err := b.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where(b.ID.Eq(id)).
		First()

	return toBookingResult(bookingM, err, "failed to lock booking")
}

// FindActive retrieves the unpaid booking a buyer holds for a product.
func (repo *bookingRepository) FindActive(ctx context.Context, buyerEmail string, productID uuid.UUID) (*entity.Booking, error) {
	b := repo.q.BookingModel
	bookingM, err := b.WithContext(ctx).
		Where(b.BuyerEmail.Eq(buyerEmail), b.ProductID.Eq(productID), b.Paid.Is(false)).
		First()

	return toBookingResult(bookingM, err, "failed to find active booking")
}

func toBookingResult(bookingM *model.BookingModel, err error, details string) (*entity.Booking, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, domainerrors.FromStoreError(err, details)
	}

	return toBookingDomain(bookingM), nil
}

// ListByBuyer returns a buyer's bookings, newest first.
func (repo *bookingRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Booking, error) {
	b := repo.q.BookingModel
	bookingMs, err := b.WithContext(ctx).
		Where(b.BuyerEmail.Eq(buyerEmail)).
		Order(b.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, domainerrors.FromStoreError(err, "failed to list bookings")
	}

	bookings := make([]*entity.Booking, 0, len(bookingMs))
	for _, bookingM := range bookingMs {
		bookings = append(bookings, toBookingDomain(bookingM))
	}

	return bookings, nil
}

// Create persists a new unpaid booking.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.q.BookingModel.WithContext(ctx).Create(bookingM); err != nil {
		if isConstraintViolation(err, activeBookingIndex) {
			return repository.ErrDuplicateActiveBooking
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.FromStoreError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

// MarkPaid sets paid and the transaction id, guarded on paid=false.
func (repo *bookingRepository) MarkPaid(ctx context.Context, id uuid.UUID, transactionID string) (bool, error) {
	b := repo.q.BookingModel
	result, err := b.WithContext(ctx).
		Where(b.ID.Eq(id), b.Paid.Is(false)).
		Updates(map[string]any{
			"paid":           true,
			"transaction_id": transactionID,
		})
	if err != nil {
		return false, domainerrors.FromStoreError(err, "failed to mark booking paid")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	return &entity.Booking{
		ID:              data.ID,
		BuyerEmail:      data.BuyerEmail,
		ProductID:       data.ProductID,
		ProductName:     data.ProductName,
		Price:           data.Price,
		Phone:           data.Phone,
		MeetingLocation: data.MeetingLocation,
		Paid:            data.Paid,
		TransactionID:   data.TransactionID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:              data.ID,
		BuyerEmail:      data.BuyerEmail,
		ProductID:       data.ProductID,
		ProductName:     data.ProductName,
		Price:           data.Price,
		Phone:           data.Phone,
		MeetingLocation: data.MeetingLocation,
		Paid:            data.Paid,
		TransactionID:   data.TransactionID,
	}
}
