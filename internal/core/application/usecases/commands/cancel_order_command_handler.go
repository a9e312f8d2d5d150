package commands

import (
	"context"
	"time"

	"ordering/internal/core/application/contracts"
	"ordering/internal/core/domain/services"
)

// CancelOrderCommandHandler handles final cancellation of orders.
// Moves the order to its terminal Cancelled state and queues the Cancelled
// event.
type CancelOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	tracking     TrackingInvalidator
	orderService services.OrderService
}

// NewCancelOrderCommandHandler creates a handler for final cancellations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, tracking TrackingInvalidator) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:   uowFactory,
		tracking:     tracking,
		orderService: services.NewOrderService(),
	}
}

// Handle processes the cancellation.
// Loads the order, applies the Cancelled transition with the supplied
// reasons, and persists the aggregate with its outbox record in one
// transaction.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	event, err := h.orderService.CancelOrder(aggregate, cmd.FailureMessages(), time.Now().UTC())
	if err != nil {
		return err
	}

	message, err := contracts.NewOrderCancelledMessage(event)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Add(ctx, message); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// best effort, the cache TTL still bounds staleness if eviction fails
	_ = h.tracking.Invalidate(ctx, aggregate.TrackingID())

	return nil
}
