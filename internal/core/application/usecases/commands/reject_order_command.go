package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents the restaurant's rejection of a paid order.
// Cancellation of the order begins, and the already-completed payment still
// has to be rolled back before the order is finally cancelled.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.OrderID
	failureMessages []string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject a paid order, carrying the
// restaurant's rejection reasons.
func NewRejectOrderCommand(orderID kernel.OrderID, failureMessages []string) (RejectOrderCommand, error) {
	rejectCommand := RejectOrderCommand{
		failureMessages: failureMessages,
		guard:           guard.NewConstructorGuard(),
	}

	if err := rejectCommand.setOrderID(orderID); err != nil {
		return RejectOrderCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the rejected order.
func (c RejectOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// FailureMessages returns the restaurant's rejection reasons.
func (c RejectOrderCommand) FailureMessages() []string {
	return c.failureMessages
}

func (c *RejectOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
