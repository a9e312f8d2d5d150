package commands

import (
	"context"
	"time"

	"ordering/internal/core/application/contracts"
	"ordering/internal/core/domain/services"
)

// RejectOrderCommandHandler handles restaurant rejections of paid orders.
// Moves the order to Cancelling and queues the Cancelling event so the
// payment can be rolled back.
type RejectOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	tracking     TrackingInvalidator
	orderService services.OrderService
}

// NewRejectOrderCommandHandler creates a handler for restaurant rejections.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory, tracking TrackingInvalidator) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory:   uowFactory,
		tracking:     tracking,
		orderService: services.NewOrderService(),
	}
}

// Handle processes the rejection.
// Loads the order, begins cancellation with the rejection reasons, and
// persists the aggregate with its outbox record in one transaction.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	event, err := h.orderService.CancelOrderPayment(aggregate, cmd.FailureMessages(), time.Now().UTC())
	if err != nil {
		return err
	}

	message, err := contracts.NewOrderCancellingMessage(event)
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
