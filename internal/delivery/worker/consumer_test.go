package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"resale/internal/delivery/worker/handler"
	"resale/internal/domain/constants"
	"resale/internal/domain/entity"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/service"
	mockusecase "resale/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeReader hands out queued messages, then blocks until the consumer stops.
type fakeReader struct {
	msgs chan kafka.Message

	mu      sync.Mutex
	commits []int64
}

func newFakeReader(msgs ...kafka.Message) *fakeReader {
	r := &fakeReader{msgs: make(chan kafka.Message, len(msgs))}
	for _, msg := range msgs {
		r.msgs <- msg
	}

	return r
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case msg := <-r.msgs:
		return msg, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, msg := range msgs {
		r.commits = append(r.commits, msg.Offset)
	}

	return nil
}

func (r *fakeReader) Close() error { return nil }

func (r *fakeReader) committed() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]int64(nil), r.commits...)
}

type consumerFixture struct {
	bookingUC  *mockusecase.MockBookingUsecase
	wishlistUC *mockusecase.MockWishlistUsecase
}

func newConsumerFixture(t *testing.T) *consumerFixture {
	t.Helper()

	return &consumerFixture{
		bookingUC:  mockusecase.NewMockBookingUsecase(t),
		wishlistUC: mockusecase.NewMockWishlistUsecase(t),
	}
}

// run serves reader with the given lane count until want offsets are committed.
func (f *consumerFixture) run(t *testing.T, reader *fakeReader, workers, want int) []int64 {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())
	consumer := &kafkaConsumer{
		enabled: true,
		workers: workers,
		backoff: time.Millisecond,
		reader:  reader,
		processor: handler.NewPaymentEventProcessor(handler.PaymentEventProcessorParams{
			Logger:     logger,
			BookingUC:  f.bookingUC,
			WishlistUC: f.wishlistUC,
		}),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	served := make(chan error, 1)
	go func() { served <- consumer.Serve(context.Background()) }()

	require.Eventually(t, func() bool { return len(reader.committed()) >= want }, 2*time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-served)

	return reader.committed()
}

func paymentMessage(t *testing.T, partition int, offset int64, bookingID, productID uuid.UUID) kafka.Message {
	t.Helper()

	value, err := json.Marshal(&service.PaymentCompletedEvent{
		Type:          constants.EventTypePaymentCompleted,
		PaymentID:     uuid.NewString(),
		BookingID:     bookingID.String(),
		ProductID:     productID.String(),
		TransactionID: "pi_1",
		Amount:        500,
	})
	require.NoError(t, err)

	return kafka.Message{Partition: partition, Offset: offset, Value: value}
}

func TestKafkaConsumer_CommitsPartitionInOrder(t *testing.T) {
	f := newConsumerFixture(t)
	slowBooking, fastBooking, productID := uuid.New(), uuid.New(), uuid.New()

	f.bookingUC.EXPECT().MarkPaid(mock.Anything, slowBooking, "pi_1").
		Run(func(context.Context, uuid.UUID, string) { time.Sleep(150 * time.Millisecond) }).
		Return(&entity.Booking{ID: slowBooking, Paid: true}, nil)
	f.bookingUC.EXPECT().MarkPaid(mock.Anything, fastBooking, "pi_1").
		Return(&entity.Booking{ID: fastBooking, Paid: true}, nil)
	f.wishlistUC.EXPECT().RemoveProduct(mock.Anything, productID).Return(0, nil).Times(2)

	reader := newFakeReader(
		paymentMessage(t, 0, 10, slowBooking, productID),
		paymentMessage(t, 0, 11, fastBooking, productID),
	)

	assert.Equal(t, []int64{10, 11}, f.run(t, reader, 2, 2))
}

func TestKafkaConsumer_RetriesStoreFailureBeforeCommit(t *testing.T) {
	f := newConsumerFixture(t)
	bookingID, productID := uuid.New(), uuid.New()

	f.bookingUC.EXPECT().MarkPaid(mock.Anything, bookingID, "pi_1").
		Return(nil, errors.New("connection reset")).Twice()
	f.bookingUC.EXPECT().MarkPaid(mock.Anything, bookingID, "pi_1").
		Return(&entity.Booking{ID: bookingID, Paid: true}, nil).Once()
	f.wishlistUC.EXPECT().RemoveProduct(mock.Anything, productID).Return(1, nil).Once()

	reader := newFakeReader(paymentMessage(t, 0, 7, bookingID, productID))

	assert.Equal(t, []int64{7}, f.run(t, reader, 1, 1))
}

func TestKafkaConsumer_CommitsUnprocessableEvents(t *testing.T) {
	f := newConsumerFixture(t)
	missingBooking, productID := uuid.New(), uuid.New()

	f.bookingUC.EXPECT().MarkPaid(mock.Anything, missingBooking, "pi_1").
		Return(nil, domainerrors.ErrBookingNotFound).Once()

	reader := newFakeReader(
		kafka.Message{Partition: 0, Offset: 1, Value: []byte("not-json")},
		paymentMessage(t, 0, 2, missingBooking, productID),
	)

	assert.Equal(t, []int64{1, 2}, f.run(t, reader, 1, 2))
}

func TestLaneFor(t *testing.T) {
	assert.Equal(t, 0, laneFor(0, 4))
	assert.Equal(t, 1, laneFor(5, 4))
	assert.Equal(t, 3, laneFor(3, 4))
	assert.Equal(t, 0, laneFor(7, 1))
}
