package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"resale/config"
	deliverycontext "resale/internal/delivery/context"
	"resale/internal/domain/entity"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/repository"
	"resale/internal/domain/service"
	"resale/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type bookingService struct {
	bookingRepo  repository.BookingRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
	qrService    service.QRCodeService
	storeTimeout time.Duration
	logger       *slog.Logger
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	BookingRepo repository.BookingRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	QRService   service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewBookingService creates the booking ledger usecase.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		bookingRepo:  params.BookingRepo,
		productRepo:  params.ProductRepo,
		userRepo:     params.UserRepo,
		qrService:    params.QRService,
		storeTimeout: storeTimeout(params.Config),
		logger:       params.Logger,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records an unpaid booking priced from the stored product.
func (srv *bookingService) Create(ctx context.Context, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	product, err := srv.productRepo.FindByID(storeCtx, input.ProductID)
	if err != nil {
		return nil, translateRepoError(err, "failed to load product for booking")
	}
	if product.Sold {
		return nil, errors.WithStack(domainerrors.ErrProductSold)
	}

	conflict := domainerrors.ErrBookingConflict.WithMessage(fmt.Sprintf("You already have a booking for %s", product.Name))

	_, err = srv.bookingRepo.FindActive(storeCtx, input.BuyerEmail, input.ProductID)
	if err == nil {
		srv.log(ctx).Info("Duplicate booking rejected",
			slog.String("buyer", input.BuyerEmail),
			slog.String("productID", input.ProductID.String()))

		return nil, errors.WithStack(conflict)
	}
	if !errors.Is(err, repository.ErrBookingNotFound) {
		return nil, errors.Wrap(err, "failed to check existing booking")
	}

	booking := &entity.Booking{
		ID:              uuid.New(),
		BuyerEmail:      input.BuyerEmail,
		ProductID:       product.ID,
		ProductName:     product.Name,
		Price:           product.Price,
		Phone:           input.Phone,
		MeetingLocation: input.MeetingLocation,
	}
	if err := srv.bookingRepo.Create(storeCtx, booking); err != nil {
		// The partial unique index catches a concurrent insert that passed the check above.
		if errors.Is(err, repository.ErrDuplicateActiveBooking) {
			return nil, errors.WithStack(conflict)
		}

		return nil, translateRepoError(err, "failed to create booking")
	}

	srv.log(ctx).Info("Booking created",
		slog.String("bookingID", booking.ID.String()),
		slog.String("productID", booking.ProductID.String()),
		slog.String("buyer", booking.BuyerEmail))

	return booking, nil
}

// Get returns a booking to its buyer or to an admin.
func (srv *bookingService) Get(ctx context.Context, callerEmail string, id uuid.UUID) (*entity.Booking, error) {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	return srv.getVisible(storeCtx, callerEmail, id)
}

func (srv *bookingService) getVisible(ctx context.Context, callerEmail string, id uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get booking")
	}
	if booking.IsOwnedBy(callerEmail) {
		return booking, nil
	}

	admin, err := isAdmin(ctx, srv.userRepo, callerEmail)
	if err != nil {
		return nil, err
	}
	if !admin {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return booking, nil
}

func (srv *bookingService) ListByBuyer(ctx context.Context, callerEmail, email string) ([]*entity.Booking, error) {
	if callerEmail != email {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	bookings, err := srv.bookingRepo.ListByBuyer(storeCtx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

// MarkPaid flips the booking to paid. A booking that is already paid keeps its first transaction id.
func (srv *bookingService) MarkPaid(ctx context.Context, id uuid.UUID, transactionID string) (*entity.Booking, error) {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	booking, err := srv.bookingRepo.FindByID(storeCtx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to load booking")
	}
	if booking.Paid {
		return booking, nil
	}

	changed, err := srv.bookingRepo.MarkPaid(storeCtx, id, transactionID)
	if err != nil {
		return nil, translateRepoError(err, "failed to mark booking paid")
	}
	if !changed {
		// Paid concurrently; return the stored state.
		booking, err = srv.bookingRepo.FindByID(storeCtx, id)
		if err != nil {
			return nil, translateRepoError(err, "failed to reload booking")
		}

		return booking, nil
	}

	booking.Paid = true
	booking.TransactionID = &transactionID

	srv.log(ctx).Info("Booking marked paid",
		slog.String("bookingID", id.String()),
		slog.String("transactionID", transactionID))

	return booking, nil
}

// ReceiptQR renders the receipt for a paid booking visible to the caller.
func (srv *bookingService) ReceiptQR(ctx context.Context, callerEmail string, id uuid.UUID) ([]byte, error) {
	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	booking, err := srv.getVisible(storeCtx, callerEmail, id)
	if err != nil {
		return nil, err
	}
	if !booking.Paid || booking.TransactionID == nil {
		return nil, errors.WithStack(domainerrors.ErrBookingNotPaid)
	}

	png, err := srv.qrService.GenerateReceiptQR(booking.ID, *booking.TransactionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render receipt")
	}

	return png, nil
}
