package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"resale/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localPublishTimeout = 10 * time.Second
	localSubscription   = "projects/local/subscriptions/payment-events-sub"
)

// localHTTPPublisher posts events straight to the worker's push endpoint in
// the same envelope Google Pub/Sub push subscriptions use.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher creates a publisher for development setups without a broker.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPublishTimeout},
		logger:   logger,
	}
}

func (p *localHTTPPublisher) PublishPaymentCompleted(ctx context.Context, event *service.PaymentCompletedEvent) error {
	body, err := encodePushEnvelope(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "post to %s", p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("worker answered %d for payment %s", resp.StatusCode, event.PaymentID)
	}

	p.logger.DebugContext(ctx, "Delivered payment event to local worker",
		slog.String("endpoint", p.endpoint),
		slog.String("payment_id", event.PaymentID),
		slog.String("booking_id", event.BookingID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}

func encodePushEnvelope(event *service.PaymentCompletedEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode payment event")
	}

	var msg PubSubPushMessage
	msg.Subscription = localSubscription
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.PaymentID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	msg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(err, "encode push envelope")
	}

	return body, nil
}
