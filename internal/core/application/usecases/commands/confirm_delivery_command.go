package commands

import (
	"errors"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents the customer confirming receipt of
// their delivered order.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a confirmation command.
func NewConfirmDeliveryCommand(orderID, customerID kernel.UUID) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the confirming customer's identifier.
func (c ConfirmDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *ConfirmDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmDeliveryCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
