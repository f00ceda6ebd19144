package service

import (
	"context"
	"time"
)

// PaymentCompletedEvent is published once a payment and its booking/product transitions have committed.
type PaymentCompletedEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	Type          string    `json:"type"`
	PaymentID     string    `json:"payment_id"`
	BookingID     string    `json:"booking_id"`
	ProductID     string    `json:"product_id"`
	BuyerEmail    string    `json:"buyer_email"`
	TransactionID string    `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPaymentCompleted publishes a payment event for async processing
	PublishPaymentCompleted(ctx context.Context, event *PaymentCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
