package commands

import (
	"errors"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/guard"
)

var ErrRejectDeliveryRequestCommandIsNotConstructed = errors.New(
	"RejectDeliveryRequestCommand must be created via NewRejectDeliveryRequestCommand constructor",
)

// RejectDeliveryRequestCommand represents a courier declining a delivery
// request.
type RejectDeliveryRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectDeliveryRequestCommand creates a rejection command.
func NewRejectDeliveryRequestCommand(requestID, courierID kernel.UUID) (RejectDeliveryRequestCommand, error) {
	cmd := RejectDeliveryRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setCourierID(courierID),
	); err != nil {
		return RejectDeliveryRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectDeliveryRequestCommandIsNotConstructed)
}

// RequestID returns the delivery request being declined.
func (c RejectDeliveryRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CourierID returns the declining courier's identifier.
func (c RejectDeliveryRequestCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *RejectDeliveryRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *RejectDeliveryRequestCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
