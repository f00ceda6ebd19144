package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"resale/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

const kafkaWriteTimeout = 10 * time.Second

// kafkaPublisher implements EventPublisher on a Kafka topic.
// Events are keyed by booking so every event for a booking lands on one partition.
type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(raw string) []string {
	brokers := make([]string, 0)
	for broker := range strings.SplitSeq(raw, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}

	return brokers
}

// NewKafkaPublisher creates a publisher writing to topic on the given brokers
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			WriteTimeout: kafkaWriteTimeout,
		},
		logger: logger,
	}
}

// PublishPaymentCompleted writes the event and waits for broker acknowledgement
func (p *kafkaPublisher) PublishPaymentCompleted(ctx context.Context, event *service.PaymentCompletedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := eventAttributes(event)
	headers := make([]kafka.Header, 0, len(attributes))
	for key, value := range attributes {
		headers = append(headers, kafka.Header{Key: key, Value: []byte(value)})
	}

	p.logger.Info("[Kafka] Publishing event",
		slog.String("type", event.Type),
		slog.String("payment_id", event.PaymentID),
	)

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(event.BookingID),
		Value:   data,
		Time:    event.OccurredAt,
		Headers: headers,
	}); err != nil {
		return errors.Wrap(err, "failed to write kafka message")
	}

	p.logger.Info("[Kafka] Event published successfully",
		slog.String("payment_id", event.PaymentID),
	)

	return nil
}

// Close flushes pending writes and closes broker connections
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
