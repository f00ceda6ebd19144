// Package payment adapts external payment processors to service.PaymentProvider.
package payment

import (
	"context"
	"log/slog"

	"resale/config"
	"resale/internal/domain/constants"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// intentCreator is the slice of the Stripe client this adapter uses.
type intentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type stripeProvider struct {
	intents intentCreator
	logger  *slog.Logger
}

// NewStripeProvider creates a PaymentProvider backed by Stripe PaymentIntents
func NewStripeProvider(secretKey string, logger *slog.Logger) service.PaymentProvider {
	sc := client.New(secretKey, nil)

	return &stripeProvider{
		intents: sc.PaymentIntents,
		logger:  logger,
	}
}

// CreatePaymentIntent asks Stripe for a new intent and returns its client secret
func (p *stripeProvider) CreatePaymentIntent(ctx context.Context, req *service.PaymentIntentRequest) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.Amount),
		Currency:           stripe.String(req.Currency),
		PaymentMethodTypes: stripe.StringSlice(req.PaymentMethodTypes),
	}
	params.Context = ctx

	intent, err := p.intents.New(params)
	if err != nil {
		return nil, p.mapError(ctx, err)
	}

	p.logger.Debug("Stripe payment intent created",
		slog.String("payment_intent_id", intent.ID),
		slog.Int64("amount", req.Amount),
		slog.String("currency", req.Currency),
	)

	return &service.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func (p *stripeProvider) mapError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.WithStack(domainerrors.ErrTimeout.WithDetails("payment provider did not answer in time"))
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		p.logger.Warn("Stripe request failed",
			slog.String("type", string(stripeErr.Type)),
			slog.String("code", string(stripeErr.Code)),
			slog.Int("http_status", stripeErr.HTTPStatusCode),
			slog.String("request_id", stripeErr.RequestID),
		)

		return errors.WithStack(domainerrors.ErrPaymentProvider.WithDetails(stripeErr.Msg))
	}

	p.logger.Warn("Stripe request failed", slog.Any("error", err))

	return errors.WithStack(domainerrors.ErrPaymentProvider.WithDetails(err.Error()))
}

// unconfiguredProvider answers every request with ErrPaymentProvider.
type unconfiguredProvider struct{}

func (unconfiguredProvider) CreatePaymentIntent(context.Context, *service.PaymentIntentRequest) (*service.PaymentIntent, error) {
	return nil, errors.WithStack(domainerrors.ErrPaymentProvider.WithDetails("payment provider is not configured"))
}

// NewPaymentProvider selects the provider named in configuration
func NewPaymentProvider(cfg *config.Config, logger *slog.Logger) (service.PaymentProvider, error) {
	if cfg.Payment == nil || cfg.Payment.SecretKey == "" {
		logger.Warn("Payment provider not configured, payment intents are disabled")

		return unconfiguredProvider{}, nil
	}

	switch cfg.Payment.Provider {
	case "", constants.PaymentProviderStripe:
		return NewStripeProvider(cfg.Payment.SecretKey, logger), nil
	default:
		return nil, errors.Errorf("unknown payment provider: %s", cfg.Payment.Provider)
	}
}
