package commands

import (
	"errors"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/guard"
)

var ErrAcceptDeliveryRequestCommandIsNotConstructed = errors.New(
	"AcceptDeliveryRequestCommand must be created via NewAcceptDeliveryRequestCommand constructor",
)

// AcceptDeliveryRequestCommand represents a courier's acceptance of a
// delivery request.
type AcceptDeliveryRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryRequestCommand creates an acceptance command.
func NewAcceptDeliveryRequestCommand(requestID, courierID kernel.UUID) (AcceptDeliveryRequestCommand, error) {
	cmd := AcceptDeliveryRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setCourierID(courierID),
	); err != nil {
		return AcceptDeliveryRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryRequestCommandIsNotConstructed)
}

// RequestID returns the delivery request being accepted.
func (c AcceptDeliveryRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CourierID returns the accepting courier's identifier.
func (c AcceptDeliveryRequestCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AcceptDeliveryRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *AcceptDeliveryRequestCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
