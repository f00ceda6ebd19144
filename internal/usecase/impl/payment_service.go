package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"resale/config"
	deliverycontext "resale/internal/delivery/context"
	"resale/internal/domain/constants"
	"resale/internal/domain/entity"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/repository"
	"resale/internal/domain/service"
	"resale/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const paymentLockPrefix = "lock:payment:booking:"

type paymentService struct {
	txManager      repository.TransactionManager
	locker         service.Locker
	provider       service.PaymentProvider
	publisher      service.EventPublisher
	storeTimeout   time.Duration
	paymentTimeout time.Duration
	currency       string
	methodTypes    []string
	logger         *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Locker    service.Locker
	Provider  service.PaymentProvider
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPaymentService creates the payment recorder usecase.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	srv := &paymentService{
		txManager:    params.TxManager,
		locker:       params.Locker,
		provider:     params.Provider,
		publisher:    params.Publisher,
		storeTimeout: storeTimeout(params.Config),
		logger:       params.Logger,
	}
	if params.Config != nil && params.Config.Payment != nil {
		srv.paymentTimeout = params.Config.Payment.Timeout
		srv.currency = params.Config.Payment.Currency
		srv.methodTypes = params.Config.Payment.MethodTypes
	}

	return srv
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordPayment stores the payment and moves the booking to paid and the product to sold atomically.
func (srv *paymentService) RecordPayment(ctx context.Context, input *usecase.RecordPaymentInput) (*usecase.RecordPaymentOutput, error) {
	if input.TransactionID == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("transactionId is required"))
	}
	if input.Amount <= 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("amount must be positive"))
	}

	release, err := srv.locker.TryLock(ctx, paymentLockPrefix+input.BookingID.String())
	switch {
	case errors.Is(err, service.ErrLockHeld):
		return nil, errors.WithStack(domainerrors.ErrPaymentInProgress)
	case err != nil:
		// Row locks inside the transaction still serialize the writes.
		srv.log(ctx).Warn("Payment lock unavailable, relying on row locks",
			slog.String("bookingID", input.BookingID.String()),
			slog.Any("error", err))
	default:
		defer func() {
			if releaseErr := release(context.WithoutCancel(ctx)); releaseErr != nil {
				srv.log(ctx).Warn("Failed to release payment lock",
					slog.String("bookingID", input.BookingID.String()),
					slog.Any("error", releaseErr))
			}
		}()
	}

	storeCtx, cancel := withTimeout(ctx, srv.storeTimeout)
	defer cancel()

	output := &usecase.RecordPaymentOutput{}
	err = srv.txManager.Execute(storeCtx, func(factory repository.RepositoryFactory) error {
		return srv.recordInTx(storeCtx, factory, input, output)
	})
	if err != nil {
		return nil, translateRepoError(err, "failed to record payment")
	}

	if output.Replayed {
		srv.log(ctx).Info("Payment replayed for paid booking",
			slog.String("bookingID", input.BookingID.String()),
			slog.String("transactionID", output.Payment.TransactionID))

		return output, nil
	}

	srv.log(ctx).Info("Payment recorded",
		slog.String("paymentID", output.Payment.ID.String()),
		slog.String("bookingID", input.BookingID.String()),
		slog.String("transactionID", input.TransactionID))

	srv.publishCompleted(ctx, output.Payment)

	return output, nil
}

func (srv *paymentService) recordInTx(
	ctx context.Context,
	factory repository.RepositoryFactory,
	input *usecase.RecordPaymentInput,
	output *usecase.RecordPaymentOutput,
) error {
	bookingRepo := factory.NewBookingRepository()
	productRepo := factory.NewProductRepository()
	paymentRepo := factory.NewPaymentRepository()

	booking, err := bookingRepo.FindByIDForUpdate(ctx, input.BookingID)
	if err != nil {
		return errors.Wrap(err, "failed to lock booking")
	}
	if !booking.IsOwnedBy(input.CallerEmail) {
		return errors.WithStack(domainerrors.ErrForbidden)
	}
	if booking.ProductID != input.ProductID {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("booking does not reference this product"))
	}

	if booking.Paid {
		payment, err := srv.existingPayment(ctx, paymentRepo, booking)
		if err != nil {
			return err
		}
		output.Payment = payment
		output.Replayed = true

		return nil
	}

	product, err := productRepo.FindByIDForUpdate(ctx, booking.ProductID)
	if err != nil {
		return errors.Wrap(err, "failed to lock product")
	}
	if product.Sold {
		return errors.WithStack(domainerrors.ErrProductSold.WithDetails("sold through another booking"))
	}

	payment := &entity.Payment{
		ID:            uuid.New(),
		BookingID:     booking.ID,
		ProductID:     booking.ProductID,
		BuyerEmail:    booking.BuyerEmail,
		TransactionID: input.TransactionID,
		Amount:        input.Amount,
	}
	if err := paymentRepo.Create(ctx, payment); err != nil {
		return errors.Wrap(err, "failed to append payment")
	}

	changed, err := bookingRepo.MarkPaid(ctx, booking.ID, input.TransactionID)
	if err != nil {
		return errors.Wrap(err, "failed to mark booking paid")
	}
	if !changed {
		return errors.WithStack(domainerrors.ErrTransactionFailed.WithDetails("booking changed during payment"))
	}

	if err := productRepo.MarkSold(ctx, product.ID); err != nil {
		return errors.Wrap(err, "failed to mark product sold")
	}

	output.Payment = payment

	return nil
}

// existingPayment returns the stored payment of a paid booking. Bookings paid
// through the worker path may have no payment row; one is rebuilt from the booking.
func (srv *paymentService) existingPayment(ctx context.Context, paymentRepo repository.PaymentRepository, booking *entity.Booking) (*entity.Payment, error) {
	payment, err := paymentRepo.FindByBookingID(ctx, booking.ID)
	if err == nil {
		return payment, nil
	}
	if !errors.Is(err, repository.ErrPaymentNotFound) {
		return nil, errors.Wrap(err, "failed to load existing payment")
	}

	transactionID := ""
	if booking.TransactionID != nil {
		transactionID = *booking.TransactionID
	}

	return &entity.Payment{
		BookingID:     booking.ID,
		ProductID:     booking.ProductID,
		BuyerEmail:    booking.BuyerEmail,
		TransactionID: transactionID,
		Amount:        booking.Price,
		CreatedAt:     booking.UpdatedAt,
	}, nil
}

func (srv *paymentService) publishCompleted(ctx context.Context, payment *entity.Payment) {
	event := &service.PaymentCompletedEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          constants.EventTypePaymentCompleted,
		PaymentID:     payment.ID.String(),
		BookingID:     payment.BookingID.String(),
		ProductID:     payment.ProductID.String(),
		BuyerEmail:    payment.BuyerEmail,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
		OccurredAt:    time.Now().UTC(),
	}

	if err := srv.publisher.PublishPaymentCompleted(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish payment event",
			slog.String("paymentID", event.PaymentID),
			slog.Any("error", err))
	}
}

// CreatePaymentIntent asks the processor for a client secret covering price.
func (srv *paymentService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("price must be positive"))
	}

	providerCtx, cancel := withTimeout(ctx, srv.paymentTimeout)
	defer cancel()

	intent, err := srv.provider.CreatePaymentIntent(providerCtx, &service.PaymentIntentRequest{
		Amount:             int64(math.Round(price * 100)),
		Currency:           srv.currency,
		PaymentMethodTypes: srv.methodTypes,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to create payment intent")
	}

	srv.log(ctx).Debug("Payment intent created", slog.String("intentID", intent.ID))

	return intent.ClientSecret, nil
}
