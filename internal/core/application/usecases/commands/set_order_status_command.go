package commands

import (
	"errors"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/domain/model/order"
	"medpanda/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand represents a direct status change requested by a
// pharmacy, courier or administrator. Which targets are reachable depends
// on the actor's role and is decided by the order aggregate.
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	role    kernel.Role
	status  order.Status

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand creates a status change command.
// The target status may be anything parseable; whether the actor may reach
// it is a domain decision, not a construction error.
func NewSetOrderStatusCommand(
	orderID, actorID kernel.UUID,
	role kernel.Role,
	status order.Status,
) (SetOrderStatusCommand, error) {
	cmd := SetOrderStatusCommand{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setRole(role),
	); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order whose status changes.
func (c SetOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the requesting actor's identifier.
func (c SetOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Role returns the requesting actor's role.
func (c SetOrderStatusCommand) Role() kernel.Role {
	return c.role
}

// Status returns the requested target status.
func (c SetOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *SetOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetOrderStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *SetOrderStatusCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
