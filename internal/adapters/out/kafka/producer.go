// Package kafka provides the outbound message bus adapter.
// The producer publishes outbox records to their destination topics using
// segmentio/kafka-go.
package kafka

import (
	"context"
	"fmt"

	"ordering/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Producer publishes outbox messages to Kafka. A single writer serves all
// topics; the destination topic travels on each message. Writes are
// synchronous because the relay must not mark a message sent before the
// broker acknowledged it.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer creates a producer connected to the given brokers.
// Messages are partitioned by key so all events of one order keep their order.
func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// Publish writes a single outbox message to its topic.
func (p *Producer) Publish(ctx context.Context, message ports.OutboxMessage) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: message.Topic,
		Key:   []byte(message.Key),
		Value: message.Payload,
		Time:  message.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("publish event %s to %s: %w", message.EventID, message.Topic, err)
	}

	return nil
}

// Close flushes pending writes and releases the underlying connections.
func (p *Producer) Close() error {
	return p.writer.Close()
}
