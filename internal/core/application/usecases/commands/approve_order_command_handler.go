package commands

import (
	"context"
	"time"

	"ordering/internal/core/application/contracts"
	"ordering/internal/core/domain/services"
)

// ApproveOrderCommandHandler handles restaurant approval of paid orders.
// Moves the order to its terminal Approved state and queues the Approved
// event.
type ApproveOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	tracking     TrackingInvalidator
	orderService services.OrderService
}

// NewApproveOrderCommandHandler creates a handler for restaurant approvals.
func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory, tracking TrackingInvalidator) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory:   uowFactory,
		tracking:     tracking,
		orderService: services.NewOrderService(),
	}
}

// Handle processes the approval.
// Loads the order, applies the Approved transition, and persists the
// aggregate with its outbox record in one transaction.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
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

	event, err := h.orderService.ApproveOrder(aggregate, time.Now().UTC())
	if err != nil {
		return err
	}

	message, err := contracts.NewOrderApprovedMessage(event)
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
