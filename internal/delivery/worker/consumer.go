package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"resale/config"
	"resale/internal/delivery"
	deliverycontext "resale/internal/delivery/context"
	"resale/internal/delivery/worker/handler"
	"resale/internal/domain/constants"
	"resale/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const (
	defaultConsumerGroup = "resale-worker"
	retryBackoff         = 200 * time.Millisecond
	maxFetchBytes        = 10e6
)

// messageReader is the subset of *kafka.Reader the consumer needs
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaConsumer struct {
	enabled   bool
	workers   int
	backoff   time.Duration
	reader    messageReader
	processor *handler.PaymentEventProcessor
	logger    *slog.Logger
	ctx       context.Context
	cancel    context.CancelFunc
}

// ConsumerParams holds dependencies for the kafka consumer
type ConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.PaymentEventProcessor
}

// NewKafkaConsumer creates a delivery reading payment events from kafka.
// It stays idle unless the kafka provider is configured.
func NewKafkaConsumer(params ConsumerParams) (delivery.Delivery, error) {
	ctx, cancel := context.WithCancel(context.Background())
	consumer := &kafkaConsumer{
		processor: params.Processor,
		logger:    params.Logger,
		ctx:       ctx,
		cancel:    cancel,
		workers:   1,
		backoff:   retryBackoff,
	}

	pubsubCfg := params.Cfg.PubSub
	if pubsubCfg == nil || pubsubCfg.Provider != constants.PubSubProviderKafka {
		return consumer, nil
	}

	brokers := pubsub.ParseBrokers(pubsubCfg.KafkaBrokers)
	if len(brokers) == 0 {
		cancel()

		return nil, errors.New("kafka brokers are required for the kafka consumer")
	}

	group := defaultConsumerGroup
	if params.Cfg.Worker != nil {
		if params.Cfg.Worker.ConsumerGroup != "" {
			group = params.Cfg.Worker.ConsumerGroup
		}
		if params.Cfg.Worker.Concurrency > 0 {
			consumer.workers = params.Cfg.Worker.Concurrency
		}
	}

	consumer.enabled = true
	consumer.reader = kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        group,
		Topic:          pubsubCfg.TopicID,
		MinBytes:       1,
		MaxBytes:       maxFetchBytes,
		CommitInterval: 0,
	})

	params.Lc.Append(fx.Hook{
		OnStop: consumer.stop,
	})

	return consumer, nil
}

// Serve fetches messages until the consumer is stopped. Each partition is
// pinned to one lane so its offsets are handled and committed in order. Offsets
// are committed only after an event is handled or rejected as malformed.
func (k *kafkaConsumer) Serve(_ context.Context) error {
	if !k.enabled {
		return nil
	}

	k.logger.Info("Starting kafka consumer", slog.Int("workers", k.workers))

	lanes := make([]chan kafka.Message, k.workers)
	var wg sync.WaitGroup
	for i := range lanes {
		lanes[i] = make(chan kafka.Message)
		wg.Go(func() {
			for msg := range lanes[i] {
				k.handle(msg)
			}
		})
	}
	defer func() {
		for _, lane := range lanes {
			close(lane)
		}
		wg.Wait()
	}()

	for {
		msg, err := k.reader.FetchMessage(k.ctx)
		if err != nil {
			if k.ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "failed to fetch kafka message")
		}

		select {
		case lanes[laneFor(msg.Partition, k.workers)] <- msg:
		case <-k.ctx.Done():
			return nil
		}
	}
}

func laneFor(partition, lanes int) int {
	if partition < 0 {
		partition = -partition
	}

	return partition % lanes
}

func (k *kafkaConsumer) handle(msg kafka.Message) {
	requestID := headerValue(msg.Headers, pubsub.AttrRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	logger := k.logger.With(slog.String("request_id", requestID))
	ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(k.ctx, requestID), logger)

	for {
		err := k.process(ctx, msg)
		if err == nil || !handler.IsRetryableError(err) {
			if err != nil {
				logger.Error("[Worker] Dropping payment event", slog.Any("error", err))
			}
			if commitErr := k.reader.CommitMessages(ctx, msg); commitErr != nil && ctx.Err() == nil {
				logger.Error("[Worker] Failed to commit offset", slog.Any("error", commitErr))
			}

			return
		}

		logger.Warn("[Worker] Retrying payment event", slog.Any("error", err))
		select {
		case <-ctx.Done():
			return
		case <-time.After(k.backoff):
		}
	}
}

func (k *kafkaConsumer) process(ctx context.Context, msg kafka.Message) error {
	event, err := pubsub.UnmarshalPaymentCompleted(msg.Value)
	if err != nil {
		return err
	}
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	return k.processor.Process(ctx, event)
}

func (k *kafkaConsumer) stop(_ context.Context) error {
	k.logger.Info("Shutting down kafka consumer")
	k.cancel()

	return errors.WithStack(k.reader.Close())
}

func headerValue(headers []kafka.Header, key string) string {
	for _, header := range headers {
		if header.Key == key {
			return string(header.Value)
		}
	}

	return ""
}
