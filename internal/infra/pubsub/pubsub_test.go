package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resale/config"
	"resale/internal/domain/constants"
	"resale/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testEvent() *service.PaymentCompletedEvent {
	return &service.PaymentCompletedEvent{
		RequestID:     "req-1",
		Type:          constants.EventTypePaymentCompleted,
		PaymentID:     "pay-1",
		BookingID:     "booking-1",
		ProductID:     "product-1",
		BuyerEmail:    "buyer@example.com",
		TransactionID: "TXN1",
		Amount:        500,
		OccurredAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishPaymentCompleted(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		requestID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	require.NoError(t, publisher.PublishPaymentCompleted(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "pay-1", received.Message.MessageID)
	assert.Equal(t, constants.EventTypePaymentCompleted, received.Message.Attributes[AttrEventType])
	assert.Equal(t, "booking-1", received.Message.Attributes[AttrBookingID])

	event, err := received.DecodePaymentCompleted()
	require.NoError(t, err)
	assert.Equal(t, "product-1", event.ProductID)
	assert.Equal(t, "TXN1", event.TransactionID)
	assert.InDelta(t, 500.0, event.Amount, 0.001)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	err := publisher.PublishPaymentCompleted(context.Background(), testEvent())
	assert.Error(t, err)
}

func TestDecodePaymentCompleted_InvalidData(t *testing.T) {
	var msg PubSubPushMessage
	msg.Message.Data = "%%%not-base64"

	_, err := msg.DecodePaymentCompleted()
	assert.Error(t, err)
}

func TestParseBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, ParseBrokers(" a:9092, ,b:9092 "))
	assert.Empty(t, ParseBrokers(""))
}

func TestNewEventPublisher(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:5001/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "kafka", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderKafka, KafkaBrokers: "localhost:9092", TopicID: "payments"}},
		{name: "kafka without brokers", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderKafka, TopicID: "payments"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "carrier-pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: logger,
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
