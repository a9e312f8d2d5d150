// Package outboxrepo persists outbox messages for the transactional outbox
// pattern. Messages are written in the same transaction as the aggregate
// change they describe and published asynchronously by a relay job.
package outboxrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"github.com/google/uuid"
)

// MessageDTO represents the database structure of a pending or sent outbox
// message. The sent_at index serves the relay's pending scan.
type MessageDTO struct {
	EventID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Topic     string
	Key       string
	Payload   []byte     `gorm:"type:jsonb"`
	CreatedAt time.Time  `gorm:"index"`
	SentAt    *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// fromDomain converts an outbox message to its database representation.
func fromDomain(message ports.OutboxMessage) MessageDTO {
	return MessageDTO{
		EventID:   message.EventID.Bytes(),
		Topic:     message.Topic,
		Key:       message.Key,
		Payload:   message.Payload,
		CreatedAt: message.CreatedAt,
		SentAt:    message.SentAt,
	}
}

// toDomain converts a database DTO to an outbox message.
func toDomain(dto MessageDTO) (ports.OutboxMessage, error) {
	eventID, err := kernel.UUIDFromBytes(dto.EventID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		EventID:   eventID,
		Topic:     dto.Topic,
		Key:       dto.Key,
		Payload:   dto.Payload,
		CreatedAt: dto.CreatedAt,
		SentAt:    dto.SentAt,
	}, nil
}
