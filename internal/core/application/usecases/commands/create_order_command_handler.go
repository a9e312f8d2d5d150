package commands

import (
	"context"
	"time"

	"ordering/internal/core/application/contracts"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// CreateOrderResult is what a successfully placed order returns to the caller:
// the tracking id to poll and the initial status.
type CreateOrderResult struct {
	OrderID    kernel.OrderID
	TrackingID kernel.TrackingID
	Status     order.Status
}

// CreateOrderCommandHandler handles the business logic for order placement.
// Validates the request against the restaurant catalog, initiates the order
// through the domain service, and persists the aggregate together with its
// Created outbox message in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	restaurants  ports.RestaurantRepository
	orderService services.OrderService
	idGenerator  kernel.IDGenerator
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence, the restaurant
// catalog repository, and an identity generator for new orders.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	restaurants ports.RestaurantRepository,
	idGenerator kernel.IDGenerator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:   uowFactory,
		restaurants:  restaurants,
		orderService: services.NewOrderService(),
		idGenerator:  idGenerator,
	}
}

// Handle processes the order placement command.
// The restaurant catalog is read outside the transaction; the order and its
// outbox record are written inside one, so the order is either fully placed
// with its event queued or not placed at all.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	catalog, err := h.restaurants.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	items := make([]*order.OrderItem, 0, len(cmd.Items()))
	for _, data := range cmd.Items() {
		item, err := order.NewOrderItem(data.ProductID, data.Quantity, data.Price, data.SubTotal)
		if err != nil {
			return CreateOrderResult{}, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.CustomerID(), cmd.RestaurantID(),
		cmd.DeliveryAddress(), cmd.Price(), items)
	if err != nil {
		return CreateOrderResult{}, err
	}

	event, err := h.orderService.InitiateOrder(newOrder, catalog, h.idGenerator, time.Now().UTC())
	if err != nil {
		return CreateOrderResult{}, err
	}

	message, err := contracts.NewOrderCreatedMessage(event)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OutboxRepository().Add(ctx, message); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:    newOrder.ID(),
		TrackingID: newOrder.TrackingID(),
		Status:     newOrder.Status(),
	}, nil
}
