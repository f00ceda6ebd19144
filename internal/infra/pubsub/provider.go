// Package pubsub publishes payment events to the worker over local HTTP push,
// Google Cloud Pub/Sub or Kafka.
package pubsub

import (
	"context"
	"log/slog"

	"resale/config"
	"resale/internal/domain/constants"
	"resale/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishPaymentCompleted(_ context.Context, event *service.PaymentCompletedEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("payment_id", event.PaymentID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates the configured EventPublisher and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, payment events are not published")

		return &noopPublisher{logger: logger}, nil
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	publisher, err := buildPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Payment event publisher ready",
		slog.String("provider", cfg.Provider),
		slog.String("topic", cfg.TopicID),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// validateConfig checks the fields each provider needs.
func validateConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("local endpoint is required for local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("topic ID is required for google provider")
		}
	case constants.PubSubProviderKafka:
		if len(ParseBrokers(cfg.KafkaBrokers)) == 0 {
			return errors.New("kafka brokers are required for kafka provider")
		}
		if cfg.TopicID == "" {
			return errors.New("topic ID is required for kafka provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

func buildPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderGoogle:
		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	case constants.PubSubProviderKafka:
		return NewKafkaPublisher(ParseBrokers(cfg.KafkaBrokers), cfg.TopicID, logger), nil
	default:
		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
