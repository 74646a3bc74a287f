package order

import (
	"errors"
	"fmt"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrItemNameIsRequired is returned when the medicine name snapshot is empty.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
)

// Item is an immutable snapshot of one cart line at checkout time.
// It captures the medicine's name, category and unit price as they were
// when the order was placed, so later catalog edits cannot change what
// the customer agreed to pay.
type Item struct {
	medicineID kernel.UUID
	name       string
	category   string
	unitPrice  kernel.Money
	quantity   int

	isConstructed bool
}

// NewItem creates an order line snapshot.
// The line total is derived from unit price and quantity and is not stored
// separately, so it can never disagree with its factors.
func NewItem(medicineID kernel.UUID, name, category string, unitPrice kernel.Money, quantity int) (Item, error) {
	if err := medicineID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, ErrItemNameIsRequired
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Item{
		medicineID:    medicineID,
		name:          name,
		category:      category,
		unitPrice:     unitPrice,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// MedicineID returns the catalog reference of the snapshotted medicine.
func (i Item) MedicineID() kernel.UUID {
	return i.medicineID
}

// Name returns the medicine name as it was at checkout.
func (i Item) Name() string {
	return i.name
}

// Category returns the medicine category as it was at checkout.
func (i Item) Category() string {
	return i.category
}

// UnitPrice returns the unit price as it was at checkout.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the purchased quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns unit price multiplied by quantity.
func (i Item) LineTotal() kernel.Money {
	return i.unitPrice.Mul(i.quantity)
}
