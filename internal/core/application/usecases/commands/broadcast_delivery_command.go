package commands

import (
	"errors"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/guard"
)

var ErrBroadcastDeliveryCommandIsNotConstructed = errors.New(
	"BroadcastDeliveryCommand must be created via NewBroadcastDeliveryCommand constructor",
)

// BroadcastDeliveryCommand represents a pharmacy's request to offer an
// order to every available courier.
type BroadcastDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	pharmacyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewBroadcastDeliveryCommand creates a broadcast command.
func NewBroadcastDeliveryCommand(orderID, pharmacyID kernel.UUID) (BroadcastDeliveryCommand, error) {
	cmd := BroadcastDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPharmacyID(pharmacyID),
	); err != nil {
		return BroadcastDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BroadcastDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrBroadcastDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to broadcast.
func (c BroadcastDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PharmacyID returns the broadcasting pharmacy's identifier.
func (c BroadcastDeliveryCommand) PharmacyID() kernel.UUID {
	return c.pharmacyID
}

func (c *BroadcastDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *BroadcastDeliveryCommand) setPharmacyID(pharmacyID kernel.UUID) error {
	if err := pharmacyID.Validate(); err != nil {
		return err
	}

	c.pharmacyID = pharmacyID
	return nil
}
