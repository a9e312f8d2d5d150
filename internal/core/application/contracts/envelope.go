package contracts

import (
	"encoding/json"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
)

// Producer identifies this service in outbound envelopes.
const Producer = "order-service"

// EnvelopeVersion is the current envelope schema version.
const EnvelopeVersion = 1

// Envelope wraps every message on the bus. The payload is event-specific and
// kept as raw JSON so routing never requires decoding it.
type Envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	Payload      json.RawMessage `json:"payload"`
}

// NewEnvelope wraps a payload into a versioned envelope with a fresh event id.
func NewEnvelope(eventType string, occurredAt time.Time, payload any) (Envelope, kernel.UUID, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, kernel.UUID{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}

	eventID := kernel.NewUUID()
	return Envelope{
		EventID:      eventID.String(),
		EventType:    eventType,
		EventVersion: EnvelopeVersion,
		OccurredAt:   occurredAt,
		Producer:     Producer,
		Payload:      data,
	}, eventID, nil
}

// ToOutboxMessage converts an envelope into an outbox record for the given
// topic. The partition key is the order id so all events of one order stay in
// a single partition.
func ToOutboxMessage(envelope Envelope, eventID kernel.UUID, topic string, orderID kernel.OrderID) (ports.OutboxMessage, error) {
	data, err := json.Marshal(envelope)
	if err != nil {
		return ports.OutboxMessage{}, fmt.Errorf("marshal %s envelope: %w", envelope.EventType, err)
	}

	return ports.OutboxMessage{
		EventID:   eventID,
		Topic:     topic,
		Key:       orderID.String(),
		Payload:   data,
		CreatedAt: envelope.OccurredAt,
	}, nil
}

// UnmarshalEnvelope decodes a raw bus message into an envelope.
func UnmarshalEnvelope(data []byte) (Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return envelope, nil
}

// UnwrapPayload decodes the event-specific payload of an envelope.
func UnwrapPayload[T any](envelope Envelope) (T, error) {
	var payload T
	if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
		return payload, fmt.Errorf("decode %s payload: %w", envelope.EventType, err)
	}
	return payload, nil
}
