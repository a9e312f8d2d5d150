package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand represents the restaurant's acceptance of a paid order.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates a command to approve a paid order.
func NewApproveOrderCommand(orderID kernel.OrderID) (ApproveOrderCommand, error) {
	approveCommand := ApproveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := approveCommand.setOrderID(orderID); err != nil {
		return ApproveOrderCommand{}, err
	}

	return approveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being approved.
func (c ApproveOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *ApproveOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
