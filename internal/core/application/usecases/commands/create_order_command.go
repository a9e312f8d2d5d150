package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
)

// CreateOrderItemData is one requested line item of a create-order request.
// Construction-level validation happens in the command constructor; business
// validation against the restaurant catalog happens in the domain service.
type CreateOrderItemData struct {
	ProductID kernel.ProductID
	Quantity  int
	Price     kernel.Money
	SubTotal  kernel.Money
}

// CreateOrderCommand represents a customer's request to place a new order.
// Encapsulates the customer, the restaurant, the delivery address, the
// declared total price, and the requested line items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, restaurantID, address, price, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order accepted, track it via %s", result.TrackingID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.CustomerID
	restaurantID    kernel.RestaurantID
	deliveryAddress kernel.Address
	price           kernel.Money
	items           []CreateOrderItemData

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identities, the delivery address, and that every requested item
// carries a valid product reference and a positive quantity.
func NewCreateOrderCommand(
	customerID kernel.CustomerID,
	restaurantID kernel.RestaurantID,
	deliveryAddress kernel.Address,
	price kernel.Money,
	items []CreateOrderItemData,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		price: price,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setRestaurantID(restaurantID),
		orderCommand.setDeliveryAddress(deliveryAddress),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}

// RestaurantID returns the identifier of the restaurant being ordered from.
func (c CreateOrderCommand) RestaurantID() kernel.RestaurantID {
	return c.restaurantID
}

// DeliveryAddress returns the requested delivery destination.
func (c CreateOrderCommand) DeliveryAddress() kernel.Address {
	return c.deliveryAddress
}

// Price returns the declared total price.
func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []CreateOrderItemData {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.RestaurantID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress kernel.Address) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItemData) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
