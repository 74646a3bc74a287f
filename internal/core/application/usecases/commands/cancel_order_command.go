package commands

import (
	"errors"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a customer's request to cancel their order
// before it has been handed to a courier.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command.
func NewCancelOrderCommand(orderID, customerID kernel.UUID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the requesting customer's identifier.
func (c CancelOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
