package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resale/internal/domain/constants"
	"resale/internal/domain/entity"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/service"
	mockusecase "resale/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type processorFixture struct {
	bookingUC  *mockusecase.MockBookingUsecase
	wishlistUC *mockusecase.MockWishlistUsecase
	processor  *PaymentEventProcessor
}

func newProcessorFixture(t *testing.T) *processorFixture {
	t.Helper()

	f := &processorFixture{
		bookingUC:  mockusecase.NewMockBookingUsecase(t),
		wishlistUC: mockusecase.NewMockWishlistUsecase(t),
	}
	f.processor = NewPaymentEventProcessor(PaymentEventProcessorParams{
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		BookingUC:  f.bookingUC,
		WishlistUC: f.wishlistUC,
	})

	return f
}

func newEvent(bookingID, productID uuid.UUID) *service.PaymentCompletedEvent {
	return &service.PaymentCompletedEvent{
		Type:          constants.EventTypePaymentCompleted,
		PaymentID:     uuid.NewString(),
		BookingID:     bookingID.String(),
		ProductID:     productID.String(),
		BuyerEmail:    "buyer@x.io",
		TransactionID: "pi_1",
		Amount:        500,
	}
}

func TestPaymentEventProcessor_Process(t *testing.T) {
	bookingID := uuid.New()
	productID := uuid.New()

	t.Run("reconciles booking and clears wishlists", func(t *testing.T) {
		f := newProcessorFixture(t)
		f.bookingUC.EXPECT().MarkPaid(mock.Anything, bookingID, "pi_1").
			Return(&entity.Booking{ID: bookingID, Paid: true}, nil)
		f.wishlistUC.EXPECT().RemoveProduct(mock.Anything, productID).Return(3, nil)

		err := f.processor.Process(t.Context(), newEvent(bookingID, productID))

		require.NoError(t, err)
	})

	t.Run("ignores other event types", func(t *testing.T) {
		f := newProcessorFixture(t)
		event := newEvent(bookingID, productID)
		event.Type = "payment.refunded"

		require.NoError(t, f.processor.Process(t.Context(), event))
	})

	t.Run("malformed booking id is not retryable", func(t *testing.T) {
		f := newProcessorFixture(t)
		event := newEvent(bookingID, productID)
		event.BookingID = "nope"

		err := f.processor.Process(t.Context(), event)

		require.Error(t, err)
		assert.False(t, IsRetryableError(err))
	})

	t.Run("missing booking is not retryable", func(t *testing.T) {
		f := newProcessorFixture(t)
		f.bookingUC.EXPECT().MarkPaid(mock.Anything, bookingID, "pi_1").
			Return(nil, errors.WithStack(domainerrors.ErrBookingNotFound))

		err := f.processor.Process(t.Context(), newEvent(bookingID, productID))

		require.Error(t, err)
		assert.False(t, IsRetryableError(err))
	})

	t.Run("store failure is retryable", func(t *testing.T) {
		f := newProcessorFixture(t)
		f.bookingUC.EXPECT().MarkPaid(mock.Anything, bookingID, "pi_1").
			Return(&entity.Booking{ID: bookingID, Paid: true}, nil)
		f.wishlistUC.EXPECT().RemoveProduct(mock.Anything, productID).
			Return(0, domainerrors.NewDatabaseExecuteError(assert.AnError, "delete wishlist"))

		err := f.processor.Process(t.Context(), newEvent(bookingID, productID))

		require.Error(t, err)
		assert.True(t, IsRetryableError(err))
	})
}

func pushBody(t *testing.T, event *service.PaymentCompletedEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	envelope := map[string]any{
		"message": map[string]any{
			"data":       base64.StdEncoding.EncodeToString(data),
			"attributes": map[string]string{"request_id": "req-1"},
			"messageId":  "m-1",
		},
		"subscription": "projects/p/subscriptions/s",
	}
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	bookingID := uuid.New()
	productID := uuid.New()

	newHandler := func(f *processorFixture) *PushHandler {
		return &PushHandler{
			logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
			processor: f.processor,
		}
	}

	t.Run("acknowledges processed events", func(t *testing.T) {
		f := newProcessorFixture(t)
		f.bookingUC.EXPECT().MarkPaid(mock.Anything, bookingID, "pi_1").
			Return(&entity.Booking{ID: bookingID, Paid: true}, nil)
		f.wishlistUC.EXPECT().RemoveProduct(mock.Anything, productID).Return(0, nil)

		rec := servePush(newHandler(f), pushBody(t, newEvent(bookingID, productID)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("asks for redelivery on retryable failure", func(t *testing.T) {
		f := newProcessorFixture(t)
		f.bookingUC.EXPECT().MarkPaid(mock.Anything, bookingID, "pi_1").
			Return(nil, domainerrors.ErrTimeout)

		rec := servePush(newHandler(f), pushBody(t, newEvent(bookingID, productID)))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("acknowledges poison events", func(t *testing.T) {
		f := newProcessorFixture(t)
		event := newEvent(bookingID, productID)
		event.ProductID = "bad"

		rec := servePush(newHandler(f), pushBody(t, event))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects undecodable data", func(t *testing.T) {
		f := newProcessorFixture(t)

		rec := servePush(newHandler(f), `{"message":{"data":"%%%"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects unauthenticated push when verification is on", func(t *testing.T) {
		f := newProcessorFixture(t)
		h := newHandler(f)
		h.verifyPushAuth = true
		h.verifyToken = func(*http.Request) error { return errors.New("missing authorization header") }

		rec := servePush(h, pushBody(t, newEvent(bookingID, productID)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
