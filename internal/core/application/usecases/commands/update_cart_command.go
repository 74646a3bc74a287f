package commands

import (
	"errors"
	"fmt"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/errs"
	"medpanda/internal/pkg/guard"
)

var ErrUpdateCartCommandIsNotConstructed = errors.New(
	"UpdateCartCommand must be created via NewUpdateCartCommand constructor",
)

// UpdateCartCommand represents a request to replace the staged quantity of
// a medicine. Quantity zero removes the line.
type UpdateCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	medicineID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewUpdateCartCommand creates a command to set a staged quantity.
func NewUpdateCartCommand(customerID, medicineID kernel.UUID, quantity int) (UpdateCartCommand, error) {
	cmd := UpdateCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setMedicineID(medicineID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c UpdateCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// MedicineID returns the medicine whose line is updated.
func (c UpdateCartCommand) MedicineID() kernel.UUID {
	return c.medicineID
}

// Quantity returns the new staged quantity, zero meaning removal.
func (c UpdateCartCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCartCommand) setMedicineID(medicineID kernel.UUID) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}

	c.medicineID = medicineID
	return nil
}

func (c *UpdateCartCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}

	c.quantity = quantity
	return nil
}
