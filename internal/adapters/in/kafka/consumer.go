// Package kafka provides the inbound message bus adapter.
// Consumers read saga responses from the payment and restaurant services and
// translate them into order commands.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordering/internal/core/application/contracts"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
)

// Dispatcher routes decoded saga response envelopes to command handlers.
// Payment outcomes drive the pay/cancel transitions, approval outcomes drive
// the approve/reject transitions.
type Dispatcher struct {
	payOrderHandler     commands.PayOrderCommandHandler
	approveOrderHandler commands.ApproveOrderCommandHandler
	rejectOrderHandler  commands.RejectOrderCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler
}

// NewDispatcher creates a dispatcher over the four saga response handlers.
func NewDispatcher(
	payOrderHandler commands.PayOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
) *Dispatcher {
	return &Dispatcher{
		payOrderHandler:     payOrderHandler,
		approveOrderHandler: approveOrderHandler,
		rejectOrderHandler:  rejectOrderHandler,
		cancelOrderHandler:  cancelOrderHandler,
	}
}

// Dispatch decodes a bus message and executes the matching command.
// Unknown event types are an error so misrouted topics surface in the logs.
func (d *Dispatcher) Dispatch(ctx context.Context, value []byte) error {
	envelope, err := contracts.UnmarshalEnvelope(value)
	if err != nil {
		return err
	}

	switch envelope.EventType {
	case contracts.EventPaymentCompleted:
		return d.handlePaymentCompleted(ctx, envelope)
	case contracts.EventPaymentCancelled, contracts.EventPaymentFailed:
		return d.handlePaymentNotCompleted(ctx, envelope)
	case contracts.EventApprovalOK:
		return d.handleApprovalOK(ctx, envelope)
	case contracts.EventApprovalRejected:
		return d.handleApprovalRejected(ctx, envelope)
	default:
		return fmt.Errorf("unknown event type %q", envelope.EventType)
	}
}

func (d *Dispatcher) handlePaymentCompleted(ctx context.Context, envelope contracts.Envelope) error {
	payload, err := contracts.UnwrapPayload[contracts.PaymentResponsePayload](envelope)
	if err != nil {
		return err
	}

	orderID, err := kernel.OrderIDFromString(payload.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewPayOrderCommand(orderID)
	if err != nil {
		return err
	}

	return d.payOrderHandler.Handle(ctx, cmd)
}

func (d *Dispatcher) handlePaymentNotCompleted(ctx context.Context, envelope contracts.Envelope) error {
	payload, err := contracts.UnwrapPayload[contracts.PaymentResponsePayload](envelope)
	if err != nil {
		return err
	}

	orderID, err := kernel.OrderIDFromString(payload.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, payload.FailureMessages)
	if err != nil {
		return err
	}

	return d.cancelOrderHandler.Handle(ctx, cmd)
}

func (d *Dispatcher) handleApprovalOK(ctx context.Context, envelope contracts.Envelope) error {
	payload, err := contracts.UnwrapPayload[contracts.ApprovalResponsePayload](envelope)
	if err != nil {
		return err
	}

	orderID, err := kernel.OrderIDFromString(payload.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewApproveOrderCommand(orderID)
	if err != nil {
		return err
	}

	return d.approveOrderHandler.Handle(ctx, cmd)
}

func (d *Dispatcher) handleApprovalRejected(ctx context.Context, envelope contracts.Envelope) error {
	payload, err := contracts.UnwrapPayload[contracts.ApprovalResponsePayload](envelope)
	if err != nil {
		return err
	}

	orderID, err := kernel.OrderIDFromString(payload.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, payload.FailureMessages)
	if err != nil {
		return err
	}

	return d.rejectOrderHandler.Handle(ctx, cmd)
}

// Consumer reads one saga response topic and feeds every message through the
// dispatcher. Offsets are committed only after successful handling, so a
// crashed handler sees the message again.
type Consumer struct {
	reader     *kafka.Reader
	dispatcher *Dispatcher
	logger     *slog.Logger
}

// NewConsumer creates a consumer for the given topic in the given group.
func NewConsumer(brokers []string, group, topic string, dispatcher *Dispatcher, logger *slog.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        group,
		Topic:          topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0, // manual commit
	})

	return &Consumer{
		reader:     reader,
		dispatcher: dispatcher,
		logger:     logger.With("component", "kafka_consumer", "topic", topic),
	}
}

// Run consumes messages until the context is cancelled.
// Failed messages are logged and committed; the order aggregate rejects
// transitions that no longer apply, so replaying them would not change the
// outcome.
func (c *Consumer) Run(ctx context.Context) error {
	defer c.reader.Close()

	for {
		message, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		if err = c.dispatcher.Dispatch(ctx, message.Value); err != nil {
			c.logger.ErrorContext(ctx, "Failed to process message",
				"partition", message.Partition,
				"offset", message.Offset,
				"error", err)
		}

		if err = c.reader.CommitMessages(ctx, message); err != nil {
			return err
		}
	}
}
