package impl

import (
	"context"
	"testing"

	"resale/internal/domain/constants"
	"resale/internal/domain/entity"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/repository"
	"resale/internal/domain/service"
	mockRepo "resale/internal/mocks/repository"
	mockService "resale/internal/mocks/service"
	"resale/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentServiceFixtures struct {
	service     usecase.PaymentUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	bookingRepo *mockRepo.MockBookingRepository
	productRepo *mockRepo.MockProductRepository
	paymentRepo *mockRepo.MockPaymentRepository
	locker      *mockService.MockLocker
	provider    *mockService.MockPaymentProvider
	publisher   *mockService.MockEventPublisher
	released    *int
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	fx := paymentServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		bookingRepo: mockRepo.NewMockBookingRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		paymentRepo: mockRepo.NewMockPaymentRepository(t),
		locker:      mockService.NewMockLocker(t),
		provider:    mockService.NewMockPaymentProvider(t),
		publisher:   mockService.NewMockEventPublisher(t),
		released:    new(int),
	}
	fx.service = NewPaymentService(PaymentServiceParams{
		TxManager: fx.txManager,
		Locker:    fx.locker,
		Provider:  fx.provider,
		Publisher: fx.publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return fx
}

// expectLockAcquired makes TryLock succeed and counts releases.
func (fx paymentServiceFixtures) expectLockAcquired(bookingID uuid.UUID) {
	released := fx.released
	fx.locker.EXPECT().
		TryLock(mock.Anything, "lock:payment:booking:"+bookingID.String()).
		Return(func(context.Context) error {
			*released++

			return nil
		}, nil)
}

// expectTransaction runs the callback against the mocked factory.
func (fx paymentServiceFixtures) expectTransaction() {
	fx.factory.EXPECT().NewBookingRepository().Return(fx.bookingRepo)
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewPaymentRepository().Return(fx.paymentRepo)
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestPaymentService_RecordPayment_MarksBookingPaidAndProductSold(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	bookingID := uuid.New()
	productID := uuid.New()
	booking := &entity.Booking{
		ID:         bookingID,
		BuyerEmail: "buyer@example.com",
		ProductID:  productID,
		Price:      500,
	}
	product := &entity.Product{ID: productID, Advertised: true, Price: 500}

	fx.expectLockAcquired(bookingID)
	fx.expectTransaction()
	fx.bookingRepo.EXPECT().FindByIDForUpdate(mock.Anything, bookingID).Return(booking, nil)
	fx.productRepo.EXPECT().FindByIDForUpdate(mock.Anything, productID).Return(product, nil)
	fx.paymentRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.BookingID == bookingID && p.ProductID == productID &&
				p.TransactionID == "TXN1" && p.Amount == 500
		})).
		Return(nil)
	fx.bookingRepo.EXPECT().MarkPaid(mock.Anything, bookingID, "TXN1").Return(true, nil)
	fx.productRepo.EXPECT().MarkSold(mock.Anything, productID).Return(nil)
	fx.publisher.EXPECT().
		PublishPaymentCompleted(mock.Anything, mock.MatchedBy(func(e *service.PaymentCompletedEvent) bool {
			return e.Type == constants.EventTypePaymentCompleted &&
				e.BookingID == bookingID.String() && e.TransactionID == "TXN1"
		})).
		Return(nil)

	out, err := fx.service.RecordPayment(ctx, &usecase.RecordPaymentInput{
		CallerEmail:   "buyer@example.com",
		BookingID:     bookingID,
		ProductID:     productID,
		TransactionID: "TXN1",
		Amount:        500,
	})
	require.NoError(t, err)
	assert.False(t, out.Replayed)
	assert.Equal(t, "TXN1", out.Payment.TransactionID)
	assert.Equal(t, 1, *fx.released)
}

func TestPaymentService_RecordPayment_ReplayKeepsOriginalTransaction(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	bookingID := uuid.New()
	productID := uuid.New()
	original := "TXN1"
	booking := &entity.Booking{
		ID:            bookingID,
		BuyerEmail:    "buyer@example.com",
		ProductID:     productID,
		Paid:          true,
		TransactionID: &original,
	}
	stored := &entity.Payment{ID: uuid.New(), BookingID: bookingID, TransactionID: original, Amount: 500}

	fx.expectLockAcquired(bookingID)
	fx.expectTransaction()
	fx.bookingRepo.EXPECT().FindByIDForUpdate(mock.Anything, bookingID).Return(booking, nil)
	fx.paymentRepo.EXPECT().FindByBookingID(mock.Anything, bookingID).Return(stored, nil)

	out, err := fx.service.RecordPayment(ctx, &usecase.RecordPaymentInput{
		CallerEmail:   "buyer@example.com",
		BookingID:     bookingID,
		ProductID:     productID,
		TransactionID: "TXN2",
		Amount:        500,
	})
	require.NoError(t, err)
	assert.True(t, out.Replayed)
	assert.Equal(t, stored, out.Payment)

	fx.paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.bookingRepo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishPaymentCompleted", mock.Anything, mock.Anything)
}

func TestPaymentService_RecordPayment_ReplayWithoutPaymentRow(t *testing.T) {
	fx := createTestPaymentService(t)

	bookingID := uuid.New()
	productID := uuid.New()
	original := "TXN1"
	booking := &entity.Booking{
		ID:            bookingID,
		BuyerEmail:    "buyer@example.com",
		ProductID:     productID,
		Price:         420,
		Paid:          true,
		TransactionID: &original,
	}

	fx.expectLockAcquired(bookingID)
	fx.expectTransaction()
	fx.bookingRepo.EXPECT().FindByIDForUpdate(mock.Anything, bookingID).Return(booking, nil)
	fx.paymentRepo.EXPECT().FindByBookingID(mock.Anything, bookingID).Return(nil, repository.ErrPaymentNotFound)

	out, err := fx.service.RecordPayment(context.Background(), &usecase.RecordPaymentInput{
		CallerEmail:   "buyer@example.com",
		BookingID:     bookingID,
		ProductID:     productID,
		TransactionID: "TXN2",
		Amount:        420,
	})
	require.NoError(t, err)
	assert.True(t, out.Replayed)
	assert.Equal(t, "TXN1", out.Payment.TransactionID)
	assert.Equal(t, 420.0, out.Payment.Amount)
}

func TestPaymentService_RecordPayment_LockHeld(t *testing.T) {
	fx := createTestPaymentService(t)

	bookingID := uuid.New()
	fx.locker.EXPECT().TryLock(mock.Anything, mock.Anything).Return(nil, service.ErrLockHeld)

	_, err := fx.service.RecordPayment(context.Background(), &usecase.RecordPaymentInput{
		CallerEmail:   "buyer@example.com",
		BookingID:     bookingID,
		ProductID:     uuid.New(),
		TransactionID: "TXN1",
		Amount:        500,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentInProgress)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestPaymentService_RecordPayment_LockUnavailableFallsBackToRowLocks(t *testing.T) {
	fx := createTestPaymentService(t)

	bookingID := uuid.New()
	fx.locker.EXPECT().TryLock(mock.Anything, mock.Anything).Return(nil, errors.New("redis down"))
	fx.expectTransaction()
	fx.bookingRepo.EXPECT().FindByIDForUpdate(mock.Anything, bookingID).Return(nil, repository.ErrBookingNotFound)

	_, err := fx.service.RecordPayment(context.Background(), &usecase.RecordPaymentInput{
		CallerEmail:   "buyer@example.com",
		BookingID:     bookingID,
		ProductID:     uuid.New(),
		TransactionID: "TXN1",
		Amount:        500,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
}

func TestPaymentService_RecordPayment_Rejections(t *testing.T) {
	bookingID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name    string
		booking *entity.Booking
		input   usecase.RecordPaymentInput
		wantErr error
	}{
		{
			name:    "caller does not own booking",
			booking: &entity.Booking{ID: bookingID, BuyerEmail: "other@example.com", ProductID: productID},
			input:   usecase.RecordPaymentInput{CallerEmail: "buyer@example.com", BookingID: bookingID, ProductID: productID, TransactionID: "TXN1", Amount: 10},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "product mismatch",
			booking: &entity.Booking{ID: bookingID, BuyerEmail: "buyer@example.com", ProductID: uuid.New()},
			input:   usecase.RecordPaymentInput{CallerEmail: "buyer@example.com", BookingID: bookingID, ProductID: productID, TransactionID: "TXN1", Amount: 10},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPaymentService(t)
			fx.expectLockAcquired(bookingID)
			fx.expectTransaction()
			fx.bookingRepo.EXPECT().FindByIDForUpdate(mock.Anything, bookingID).Return(tt.booking, nil)

			_, err := fx.service.RecordPayment(context.Background(), &tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 1, *fx.released)
		})
	}
}

func TestPaymentService_RecordPayment_ProductSoldElsewhere(t *testing.T) {
	fx := createTestPaymentService(t)

	bookingID := uuid.New()
	productID := uuid.New()
	booking := &entity.Booking{ID: bookingID, BuyerEmail: "buyer@example.com", ProductID: productID}

	fx.expectLockAcquired(bookingID)
	fx.expectTransaction()
	fx.bookingRepo.EXPECT().FindByIDForUpdate(mock.Anything, bookingID).Return(booking, nil)
	fx.productRepo.EXPECT().FindByIDForUpdate(mock.Anything, productID).
		Return(&entity.Product{ID: productID, Sold: true}, nil)

	_, err := fx.service.RecordPayment(context.Background(), &usecase.RecordPaymentInput{
		CallerEmail:   "buyer@example.com",
		BookingID:     bookingID,
		ProductID:     productID,
		TransactionID: "TXN2",
		Amount:        500,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductSold)
	fx.paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.bookingRepo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
	fx.productRepo.AssertNotCalled(t, "MarkSold", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishPaymentCompleted", mock.Anything, mock.Anything)
	assert.Equal(t, 1, *fx.released)
}

func TestPaymentService_RecordPayment_RollsBackWhenProductWriteFails(t *testing.T) {
	fx := createTestPaymentService(t)

	bookingID := uuid.New()
	productID := uuid.New()
	booking := &entity.Booking{ID: bookingID, BuyerEmail: "buyer@example.com", ProductID: productID}

	fx.expectLockAcquired(bookingID)
	fx.expectTransaction()
	fx.bookingRepo.EXPECT().FindByIDForUpdate(mock.Anything, bookingID).Return(booking, nil)
	fx.productRepo.EXPECT().FindByIDForUpdate(mock.Anything, productID).Return(&entity.Product{ID: productID}, nil)
	fx.paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	fx.bookingRepo.EXPECT().MarkPaid(mock.Anything, bookingID, "TXN1").Return(true, nil)
	fx.productRepo.EXPECT().MarkSold(mock.Anything, productID).Return(domainerrors.ErrTimeout)

	_, err := fx.service.RecordPayment(context.Background(), &usecase.RecordPaymentInput{
		CallerEmail:   "buyer@example.com",
		BookingID:     bookingID,
		ProductID:     productID,
		TransactionID: "TXN1",
		Amount:        500,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTimeout)
	fx.publisher.AssertNotCalled(t, "PublishPaymentCompleted", mock.Anything, mock.Anything)
}

func TestPaymentService_RecordPayment_PublishFailureIsNotReturned(t *testing.T) {
	fx := createTestPaymentService(t)

	bookingID := uuid.New()
	productID := uuid.New()
	booking := &entity.Booking{ID: bookingID, BuyerEmail: "buyer@example.com", ProductID: productID}

	fx.expectLockAcquired(bookingID)
	fx.expectTransaction()
	fx.bookingRepo.EXPECT().FindByIDForUpdate(mock.Anything, bookingID).Return(booking, nil)
	fx.productRepo.EXPECT().FindByIDForUpdate(mock.Anything, productID).Return(&entity.Product{ID: productID}, nil)
	fx.paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	fx.bookingRepo.EXPECT().MarkPaid(mock.Anything, bookingID, "TXN1").Return(true, nil)
	fx.productRepo.EXPECT().MarkSold(mock.Anything, productID).Return(nil)
	fx.publisher.EXPECT().PublishPaymentCompleted(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	out, err := fx.service.RecordPayment(context.Background(), &usecase.RecordPaymentInput{
		CallerEmail:   "buyer@example.com",
		BookingID:     bookingID,
		ProductID:     productID,
		TransactionID: "TXN1",
		Amount:        500,
	})
	require.NoError(t, err)
	assert.False(t, out.Replayed)
}

func TestPaymentService_RecordPayment_InvalidInput(t *testing.T) {
	fx := createTestPaymentService(t)

	_, err := fx.service.RecordPayment(context.Background(), &usecase.RecordPaymentInput{
		CallerEmail:   "buyer@example.com",
		BookingID:     uuid.New(),
		ProductID:     uuid.New(),
		TransactionID: "TXN1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_CreatePaymentIntent(t *testing.T) {
	fx := createTestPaymentService(t)

	fx.provider.EXPECT().
		CreatePaymentIntent(mock.Anything, &service.PaymentIntentRequest{
			Amount:             1999,
			Currency:           "usd",
			PaymentMethodTypes: []string{"card"},
		}).
		Return(&service.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil)

	secret, err := fx.service.CreatePaymentIntent(context.Background(), 19.99)
	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret", secret)
}

func TestPaymentService_CreatePaymentIntent_Errors(t *testing.T) {
	t.Run("non-positive price", func(t *testing.T) {
		fx := createTestPaymentService(t)

		_, err := fx.service.CreatePaymentIntent(context.Background(), 0)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("provider failure", func(t *testing.T) {
		fx := createTestPaymentService(t)
		fx.provider.EXPECT().CreatePaymentIntent(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrPaymentProvider)

		_, err := fx.service.CreatePaymentIntent(context.Background(), 10)
		assert.ErrorIs(t, err, domainerrors.ErrPaymentProvider)
	})
}
