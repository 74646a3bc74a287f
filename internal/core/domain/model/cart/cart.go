// Package cart implements the per-customer staging area for checkout.
// A cart holds medicine references and quantities only; prices are resolved
// and snapshotted at checkout time.
package cart

import (
	"errors"
	"fmt"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/errs"
	"medpanda/internal/pkg/guard"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart was not created through
	// NewCart or RestoreCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
)

// Line is one cart entry: a medicine reference and a quantity.
type Line struct {
	medicineID kernel.UUID
	quantity   int
}

// NewLine creates a cart line. Quantity must be at least 1.
func NewLine(medicineID kernel.UUID, quantity int) (Line, error) {
	if err := medicineID.Validate(); err != nil {
		return Line{}, err
	}
	if quantity < 1 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return Line{medicineID: medicineID, quantity: quantity}, nil
}

// MedicineID returns the referenced medicine.
func (l Line) MedicineID() kernel.UUID {
	return l.medicineID
}

// Quantity returns the staged quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Cart is the aggregate holding a customer's staged lines.
// Lines keep their insertion order so carts render stably.
type Cart struct {
	customerID kernel.UUID
	lines      []Line

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for the customer.
func NewCart(customerID kernel.UUID) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	return &Cart{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreCart reconstructs a cart from persistence.
func RestoreCart(customerID kernel.UUID, lines []Line) (*Cart, error) {
	c, err := NewCart(customerID)
	if err != nil {
		return nil, err
	}
	c.lines = make([]Line, len(lines))
	copy(c.lines, lines)
	return c, nil
}

// Validate ensures the Cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// CustomerID returns the owning customer's identifier.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns a copy of the staged lines in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Add stages a medicine. If the medicine is already in the cart the
// quantities are summed.
func (c *Cart) Add(medicineID kernel.UUID, quantity int) error {
	line, err := NewLine(medicineID, quantity)
	if err != nil {
		return err
	}

	for i, existing := range c.lines {
		if existing.medicineID.IsEqual(medicineID) {
			c.lines[i].quantity += quantity
			return nil
		}
	}

	c.lines = append(c.lines, line)
	return nil
}

// Update replaces the staged quantity for a medicine. Quantity 0 removes
// the line; a quantity for a medicine not yet in the cart adds it.
func (c *Cart) Update(medicineID kernel.UUID, quantity int) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}

	for i, existing := range c.lines {
		if existing.medicineID.IsEqual(medicineID) {
			if quantity == 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
				return nil
			}
			c.lines[i].quantity = quantity
			return nil
		}
	}

	if quantity == 0 {
		return nil
	}

	line, err := NewLine(medicineID, quantity)
	if err != nil {
		return err
	}
	c.lines = append(c.lines, line)
	return nil
}

// Select returns the staged lines matching the given medicine IDs,
// preserving cart order. IDs with no matching line are ignored.
func (c *Cart) Select(medicineIDs []kernel.UUID) []Line {
	selected := make([]Line, 0, len(medicineIDs))
	for _, line := range c.lines {
		for _, id := range medicineIDs {
			if line.medicineID.IsEqual(id) {
				selected = append(selected, line)
				break
			}
		}
	}
	return selected
}

// RemoveLines prunes the lines for the given medicine IDs, leaving all
// other staged lines untouched. Checkout uses this to clear only the
// purchased selection.
func (c *Cart) RemoveLines(medicineIDs []kernel.UUID) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		remove := false
		for _, id := range medicineIDs {
			if line.medicineID.IsEqual(id) {
				remove = true
				break
			}
		}
		if !remove {
			kept = append(kept, line)
		}
	}
	c.lines = kept
}
