package service

import "context"

// PaymentIntentRequest describes a charge in minor currency units.
type PaymentIntentRequest struct {
	Amount             int64
	Currency           string
	PaymentMethodTypes []string
}

// PaymentIntent is the provider's answer; ClientSecret lets the browser complete the payment.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentProvider creates payment intents with an external processor.
type PaymentProvider interface {
	CreatePaymentIntent(ctx context.Context, req *PaymentIntentRequest) (*PaymentIntent, error)
}
