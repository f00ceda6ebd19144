// Package constants holds string constants shared across layers.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// PubSubProviderLocal pushes events over HTTP to a local worker.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
	// PubSubProviderKafka publishes events to a Kafka topic.
	PubSubProviderKafka = "kafka"

	// PaymentProviderStripe creates payment intents through Stripe.
	PaymentProviderStripe = "stripe"

	// EventTypePaymentCompleted is emitted after a payment has been recorded.
	EventTypePaymentCompleted = "payment.completed"
)
