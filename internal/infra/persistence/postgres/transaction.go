package postgres

import (
	"context"

	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager returns a TransactionManager running callbacks inside one GORM transaction.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// txRepositoryFactory hands out repositories bound to a single transaction.
type txRepositoryFactory struct {
	tx *gorm.DB
}

func (f *txRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *txRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func (f *txRepositoryFactory) NewBookingRepository() repository.BookingRepository {
	return NewBookingRepository(f.tx)
}

func (f *txRepositoryFactory) NewPaymentRepository() repository.PaymentRepository {
	return NewPaymentRepository(f.tx)
}

// Execute commits when fn returns nil and rolls back otherwise, including on panic.
// Errors from fn are returned untouched; begin and commit failures are classified
// as timeouts or ErrTransactionFailed.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&txRepositoryFactory{tx: tx})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	case errors.Is(err, context.DeadlineExceeded):
		return domainerrors.FromStoreError(err, "transaction did not finish in time")
	default:
		return errors.Wrap(domainerrors.ErrTransactionFailed.WithDetails(err.Error()), "failed to run transaction")
	}
}
