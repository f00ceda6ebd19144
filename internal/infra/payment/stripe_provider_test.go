package payment

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"resale/config"
	domainerrors "resale/internal/domain/errors"
	"resale/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

type fakeIntents struct {
	got    *stripe.PaymentIntentParams
	intent *stripe.PaymentIntent
	err    error
}

func (f *fakeIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.got = params

	return f.intent, f.err
}

func newTestProvider(fake *fakeIntents) *stripeProvider {
	return &stripeProvider{intents: fake, logger: slog.New(slog.DiscardHandler)}
}

func TestStripeProvider_CreatePaymentIntent(t *testing.T) {
	fake := &fakeIntents{intent: &stripe.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}}
	provider := newTestProvider(fake)

	intent, err := provider.CreatePaymentIntent(context.Background(), &service.PaymentIntentRequest{
		Amount:             50000,
		Currency:           "usd",
		PaymentMethodTypes: []string{"card"},
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret", intent.ClientSecret)

	require.NotNil(t, fake.got)
	assert.Equal(t, int64(50000), *fake.got.Amount)
	assert.Equal(t, "usd", *fake.got.Currency)
	require.Len(t, fake.got.PaymentMethodTypes, 1)
	assert.Equal(t, "card", *fake.got.PaymentMethodTypes[0])
}

func TestStripeProvider_ProviderError(t *testing.T) {
	fake := &fakeIntents{err: &stripe.Error{
		Type:           stripe.ErrorTypeInvalidRequest,
		Msg:            "Amount must be at least 50 cents",
		HTTPStatusCode: http.StatusBadRequest,
	}}
	provider := newTestProvider(fake)

	_, err := provider.CreatePaymentIntent(context.Background(), &service.PaymentIntentRequest{Amount: 1, Currency: "usd"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentProvider)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "50 cents")
}

func TestStripeProvider_Timeout(t *testing.T) {
	fake := &fakeIntents{err: errors.Wrap(context.DeadlineExceeded, "request canceled")}
	provider := newTestProvider(fake)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err := provider.CreatePaymentIntent(ctx, &service.PaymentIntentRequest{Amount: 100, Currency: "usd"})
	assert.ErrorIs(t, err, domainerrors.ErrTimeout)
}

func TestNewPaymentProvider(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	provider, err := NewPaymentProvider(&config.Config{}, logger)
	require.NoError(t, err)
	_, err = provider.CreatePaymentIntent(context.Background(), &service.PaymentIntentRequest{Amount: 100})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentProvider)

	provider, err = NewPaymentProvider(&config.Config{Payment: &config.PaymentConfig{SecretKey: "sk_test_x"}}, logger)
	require.NoError(t, err)
	assert.IsType(t, &stripeProvider{}, provider)

	_, err = NewPaymentProvider(&config.Config{Payment: &config.PaymentConfig{Provider: "omise", SecretKey: "k"}}, logger)
	assert.Error(t, err)
}
