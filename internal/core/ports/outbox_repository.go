package ports

import (
	"context"
	"encoding/json"
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event recorded for publication in the same
// transaction that persisted the aggregate change. A message is pending until
// a relay publishes it and stamps SentAt.
type OutboxMessage struct {
	EventID   kernel.UUID
	Topic     string
	Key       string
	Payload   json.RawMessage
	CreatedAt time.Time
	SentAt    *time.Time
}

// OutboxRepository defines the persistence contract for the transactional
// outbox. Add runs inside the unit of work that stores the aggregate change,
// so the event record and the state change commit or roll back together.
type OutboxRepository interface {
	// Add records a message for later publication.
	Add(ctx context.Context, message OutboxMessage) error

	// FetchPending returns up to limit unsent messages in creation order.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkSent stamps the message as published.
	MarkSent(ctx context.Context, eventID kernel.UUID, sentAt time.Time) error
}
