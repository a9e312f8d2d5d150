package commands

import (
	"context"
	"time"

	"ordering/internal/core/application/contracts"
	"ordering/internal/core/domain/services"
)

// PayOrderCommandHandler handles payment confirmation for pending orders.
// Moves the order to Paid and queues the Paid event for the restaurant
// approval request.
type PayOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	tracking     TrackingInvalidator
	orderService services.OrderService
}

// NewPayOrderCommandHandler creates a handler for payment confirmations.
func NewPayOrderCommandHandler(uowFactory OrderUoWFactory, tracking TrackingInvalidator) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory:   uowFactory,
		tracking:     tracking,
		orderService: services.NewOrderService(),
	}
}

// Handle processes the payment confirmation.
// Loads the order, applies the Paid transition, and persists the aggregate
// with its outbox record in one transaction.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
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

	event, err := h.orderService.PayOrder(aggregate, time.Now().UTC())
	if err != nil {
		return err
	}

	message, err := contracts.NewOrderPaidMessage(event)
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
