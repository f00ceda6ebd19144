package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"resale/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys carried alongside every published event.
const (
	AttrEventType = "event_type"
	AttrPaymentID = "payment_id"
	AttrBookingID = "booking_id"
	AttrRequestID = "request_id"
)

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodePaymentCompleted extracts the event from a push envelope.
func (m *PubSubPushMessage) DecodePaymentCompleted() (*service.PaymentCompletedEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	return UnmarshalPaymentCompleted(data)
}

// UnmarshalPaymentCompleted decodes a JSON event body.
func UnmarshalPaymentCompleted(data []byte) (*service.PaymentCompletedEvent, error) {
	var event service.PaymentCompletedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal payment event")
	}

	return &event, nil
}

func eventAttributes(event *service.PaymentCompletedEvent) map[string]string {
	attributes := map[string]string{
		AttrEventType: event.Type,
		AttrPaymentID: event.PaymentID,
		AttrBookingID: event.BookingID,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
