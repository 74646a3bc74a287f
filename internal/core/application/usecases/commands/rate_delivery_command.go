package commands

import (
	"errors"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/errs"
	"medpanda/internal/pkg/guard"
)

var ErrRateDeliveryCommandIsNotConstructed = errors.New(
	"RateDeliveryCommand must be created via NewRateDeliveryCommand constructor",
)

// RateDeliveryCommand represents the customer rating the courier after a
// confirmed delivery.
type RateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	rating     int

	guard guard.ConstructorGuard
}

// NewRateDeliveryCommand creates a rating command. Rating is 1 to 5.
func NewRateDeliveryCommand(orderID, customerID kernel.UUID, rating int) (RateDeliveryCommand, error) {
	cmd := RateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRating(rating),
	); err != nil {
		return RateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRateDeliveryCommandIsNotConstructed)
}

// OrderID returns the delivered order being rated.
func (c RateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the rating customer's identifier.
func (c RateDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Rating returns the rating value between 1 and 5.
func (c RateDeliveryCommand) Rating() int {
	return c.rating
}

func (c *RateDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RateDeliveryCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RateDeliveryCommand) setRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}

	c.rating = rating
	return nil
}
