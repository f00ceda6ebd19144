package repository

import "context"

// TransactionManager runs fn in one database transaction. A non-nil error from
// fn rolls back and is returned unchanged.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the enclosing transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewProductRepository() ProductRepository
	NewBookingRepository() BookingRepository
	NewPaymentRepository() PaymentRepository
}
