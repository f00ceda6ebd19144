package impl

import (
	"context"
	"testing"

	"resale/internal/domain/entity"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/repository"
	mockRepo "resale/internal/mocks/repository"
	mockService "resale/internal/mocks/service"
	"resale/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingServiceFixtures struct {
	service     usecase.BookingUsecase
	bookingRepo *mockRepo.MockBookingRepository
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
	qrService   *mockService.MockQRCodeService
}

func createTestBookingService(t *testing.T) bookingServiceFixtures {
	fx := bookingServiceFixtures{
		bookingRepo: mockRepo.NewMockBookingRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		qrService:   mockService.NewMockQRCodeService(t),
	}
	fx.service = NewBookingService(BookingServiceParams{
		BookingRepo: fx.bookingRepo,
		ProductRepo: fx.productRepo,
		UserRepo:    fx.userRepo,
		QRService:   fx.qrService,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestBookingService_Create_UsesStoredProduct(t *testing.T) {
	fx := createTestBookingService(t)

	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "ThinkPad X1", Price: 650}

	fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(product, nil)
	fx.bookingRepo.EXPECT().FindActive(mock.Anything, "buyer@example.com", productID).Return(nil, repository.ErrBookingNotFound)
	fx.bookingRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)

	booking, err := fx.service.Create(context.Background(), &usecase.CreateBookingInput{
		BuyerEmail:      "buyer@example.com",
		ProductID:       productID,
		Phone:           "0912",
		MeetingLocation: "Library",
	})
	require.NoError(t, err)
	assert.Equal(t, "ThinkPad X1", booking.ProductName)
	assert.Equal(t, 650.0, booking.Price)
	assert.False(t, booking.Paid)
	assert.Nil(t, booking.TransactionID)
}

func TestBookingService_Create_DuplicateActiveBooking(t *testing.T) {
	fx := createTestBookingService(t)

	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "MacBook Air"}
	existing := &entity.Booking{ID: uuid.New(), BuyerEmail: "buyer@example.com", ProductID: productID}

	fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(product, nil).Twice()
	fx.bookingRepo.EXPECT().FindActive(mock.Anything, "buyer@example.com", productID).Return(nil, repository.ErrBookingNotFound).Once()
	fx.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	fx.bookingRepo.EXPECT().FindActive(mock.Anything, "buyer@example.com", productID).Return(existing, nil).Once()

	input := &usecase.CreateBookingInput{BuyerEmail: "buyer@example.com", ProductID: productID}

	_, err := fx.service.Create(context.Background(), input)
	require.NoError(t, err)

	_, err = fx.service.Create(context.Background(), input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBookingConflict)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "You already have a booking for MacBook Air", appErr.Message())

	fx.bookingRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestBookingService_Create_ConcurrentInsertIsConflict(t *testing.T) {
	fx := createTestBookingService(t)

	productID := uuid.New()
	fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(&entity.Product{ID: productID, Name: "XPS 13"}, nil)
	fx.bookingRepo.EXPECT().FindActive(mock.Anything, mock.Anything, productID).Return(nil, repository.ErrBookingNotFound)
	fx.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateActiveBooking)

	_, err := fx.service.Create(context.Background(), &usecase.CreateBookingInput{BuyerEmail: "buyer@example.com", ProductID: productID})
	assert.ErrorIs(t, err, domainerrors.ErrBookingConflict)
}

func TestBookingService_Create_ProductStates(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name    string
		product *entity.Product
		findErr error
		wantErr error
	}{
		{name: "missing product", findErr: repository.ErrProductNotFound, wantErr: domainerrors.ErrProductNotFound},
		{name: "sold product", product: &entity.Product{ID: productID, Sold: true}, wantErr: domainerrors.ErrProductSold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBookingService(t)
			fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(tt.product, tt.findErr)

			_, err := fx.service.Create(context.Background(), &usecase.CreateBookingInput{BuyerEmail: "buyer@example.com", ProductID: productID})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBookingService_Get_AccessRules(t *testing.T) {
	bookingID := uuid.New()
	booking := &entity.Booking{ID: bookingID, BuyerEmail: "buyer@example.com"}

	t.Run("buyer", func(t *testing.T) {
		fx := createTestBookingService(t)
		fx.bookingRepo.EXPECT().FindByID(mock.Anything, bookingID).Return(booking, nil)

		got, err := fx.service.Get(context.Background(), "buyer@example.com", bookingID)
		require.NoError(t, err)
		assert.Equal(t, booking, got)
	})

	t.Run("admin", func(t *testing.T) {
		fx := createTestBookingService(t)
		fx.bookingRepo.EXPECT().FindByID(mock.Anything, bookingID).Return(booking, nil)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "admin@example.com").Return(&entity.User{Role: entity.RoleAdmin}, nil)

		_, err := fx.service.Get(context.Background(), "admin@example.com", bookingID)
		require.NoError(t, err)
	})

	t.Run("stranger", func(t *testing.T) {
		fx := createTestBookingService(t)
		fx.bookingRepo.EXPECT().FindByID(mock.Anything, bookingID).Return(booking, nil)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "other@example.com").Return(&entity.User{Role: entity.RoleBuyer}, nil)

		_, err := fx.service.Get(context.Background(), "other@example.com", bookingID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestBookingService(t)
		fx.bookingRepo.EXPECT().FindByID(mock.Anything, bookingID).Return(nil, repository.ErrBookingNotFound)

		_, err := fx.service.Get(context.Background(), "buyer@example.com", bookingID)
		assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
	})
}

func TestBookingService_ListByBuyer_OnlySelf(t *testing.T) {
	fx := createTestBookingService(t)

	_, err := fx.service.ListByBuyer(context.Background(), "buyer@example.com", "other@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	fx.bookingRepo.EXPECT().ListByBuyer(mock.Anything, "buyer@example.com").Return([]*entity.Booking{{ID: uuid.New()}}, nil)

	bookings, err := fx.service.ListByBuyer(context.Background(), "buyer@example.com", "buyer@example.com")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestBookingService_MarkPaid_Idempotent(t *testing.T) {
	fx := createTestBookingService(t)

	bookingID := uuid.New()
	original := "TXN1"
	paid := &entity.Booking{ID: bookingID, Paid: true, TransactionID: &original}

	fx.bookingRepo.EXPECT().FindByID(mock.Anything, bookingID).Return(paid, nil)

	booking, err := fx.service.MarkPaid(context.Background(), bookingID, "TXN2")
	require.NoError(t, err)
	assert.Equal(t, "TXN1", *booking.TransactionID)
	fx.bookingRepo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_MarkPaid_FlipsUnpaidBooking(t *testing.T) {
	fx := createTestBookingService(t)

	bookingID := uuid.New()
	fx.bookingRepo.EXPECT().FindByID(mock.Anything, bookingID).Return(&entity.Booking{ID: bookingID}, nil)
	fx.bookingRepo.EXPECT().MarkPaid(mock.Anything, bookingID, "TXN1").Return(true, nil)

	booking, err := fx.service.MarkPaid(context.Background(), bookingID, "TXN1")
	require.NoError(t, err)
	assert.True(t, booking.Paid)
	assert.Equal(t, "TXN1", *booking.TransactionID)
}

func TestBookingService_ReceiptQR(t *testing.T) {
	bookingID := uuid.New()
	txn := "TXN1"

	t.Run("paid booking", func(t *testing.T) {
		fx := createTestBookingService(t)
		fx.bookingRepo.EXPECT().FindByID(mock.Anything, bookingID).
			Return(&entity.Booking{ID: bookingID, BuyerEmail: "buyer@example.com", Paid: true, TransactionID: &txn}, nil)
		fx.qrService.EXPECT().GenerateReceiptQR(bookingID, txn).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := fx.service.ReceiptQR(context.Background(), "buyer@example.com", bookingID)
		require.NoError(t, err)
		assert.NotEmpty(t, png)
	})

	t.Run("unpaid booking", func(t *testing.T) {
		fx := createTestBookingService(t)
		fx.bookingRepo.EXPECT().FindByID(mock.Anything, bookingID).
			Return(&entity.Booking{ID: bookingID, BuyerEmail: "buyer@example.com"}, nil)

		_, err := fx.service.ReceiptQR(context.Background(), "buyer@example.com", bookingID)
		assert.ErrorIs(t, err, domainerrors.ErrBookingNotPaid)
	})
}
