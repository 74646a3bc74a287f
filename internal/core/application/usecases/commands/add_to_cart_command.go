package commands

import (
	"errors"
	"fmt"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/errs"
	"medpanda/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand represents a request to stage a medicine in the
// customer's cart.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	medicineID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a command to stage a medicine.
// Quantity must be positive; merging with an existing line happens in the
// cart aggregate.
func NewAddToCartCommand(customerID, medicineID kernel.UUID, quantity int) (AddToCartCommand, error) {
	cmd := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setMedicineID(medicineID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c AddToCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// MedicineID returns the medicine to stage.
func (c AddToCartCommand) MedicineID() kernel.UUID {
	return c.medicineID
}

// Quantity returns the quantity to stage.
func (c AddToCartCommand) Quantity() int {
	return c.quantity
}

func (c *AddToCartCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddToCartCommand) setMedicineID(medicineID kernel.UUID) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}

	c.medicineID = medicineID
	return nil
}

func (c *AddToCartCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	c.quantity = quantity
	return nil
}
