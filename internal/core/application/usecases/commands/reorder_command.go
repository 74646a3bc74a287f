package commands

import (
	"errors"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/guard"
)

var ErrReorderCommandIsNotConstructed = errors.New(
	"ReorderCommand must be created via NewReorderCommand constructor",
)

// ReorderCommand represents a request to stage a past order's items in the
// customer's cart again.
type ReorderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReorderCommand creates a command to re-stage a past order.
func NewReorderCommand(orderID, customerID kernel.UUID) (ReorderCommand, error) {
	cmd := ReorderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return ReorderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReorderCommand) Validate() error {
	return c.guard.Validate(ErrReorderCommandIsNotConstructed)
}

// OrderID returns the past order to re-stage.
func (c ReorderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the cart owner's identifier.
func (c ReorderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *ReorderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReorderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
