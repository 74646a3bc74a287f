package commands

import (
	"errors"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/errs"
	"medpanda/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a request to turn a cart selection into an
// order. MedicineIDs picks the cart lines to purchase; lines not selected
// stay staged for a later checkout.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	customerName string
	phone        string
	address      string
	notes        string
	medicineIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command. The order ID is generated
// by the caller so retries stay idempotent at the persistence layer.
func NewCheckoutCommand(
	orderID, customerID kernel.UUID,
	customerName, phone, address, notes string,
	medicineIDs []kernel.UUID,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		customerName: customerName,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setPhone(phone),
		cmd.setAddress(address),
		cmd.setMedicineIDs(medicineIDs),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the purchasing customer's identifier.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CustomerName returns the recipient name for the delivery.
func (c CheckoutCommand) CustomerName() string {
	return c.customerName
}

// Phone returns the contact number for the delivery.
func (c CheckoutCommand) Phone() string {
	return c.phone
}

// Address returns the delivery address.
func (c CheckoutCommand) Address() string {
	return c.address
}

// Notes returns free-form delivery notes, possibly empty.
func (c CheckoutCommand) Notes() string {
	return c.notes
}

// MedicineIDs returns the selected cart lines.
func (c CheckoutCommand) MedicineIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.medicineIDs))
	copy(ids, c.medicineIDs)
	return ids
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}

func (c *CheckoutCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *CheckoutCommand) setMedicineIDs(medicineIDs []kernel.UUID) error {
	if len(medicineIDs) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, id := range medicineIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.medicineIDs = make([]kernel.UUID, len(medicineIDs))
	copy(c.medicineIDs, medicineIDs)
	return nil
}
