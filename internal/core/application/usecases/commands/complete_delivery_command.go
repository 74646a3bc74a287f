package commands

import (
	"errors"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents the assigned courier reporting the
// package handed over at the delivery address.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a completion command.
func NewCompleteDeliveryCommand(orderID, courierID kernel.UUID) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the delivered order.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the reporting courier's identifier.
func (c CompleteDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *CompleteDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteDeliveryCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
