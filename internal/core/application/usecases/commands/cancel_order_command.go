package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents the final cancellation of an order, issued
// when the payment service confirms the payment was rolled back, or directly
// for a pending order whose payment failed.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.OrderID
	failureMessages []string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to finally cancel an order, carrying
// the reasons that led to cancellation.
func NewCancelOrderCommand(orderID kernel.OrderID, failureMessages []string) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		failureMessages: failureMessages,
		guard:           guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being cancelled.
func (c CancelOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// FailureMessages returns the cancellation reasons.
func (c CancelOrderCommand) FailureMessages() []string {
	return c.failureMessages
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
