// Package medicine implements the catalog/inventory aggregate. Stock is a
// single non-negative counter per medicine; the contended decrement at
// checkout happens storage-side, while this aggregate holds the legality
// checks and the pharmacy ownership used for cart assembly.
package medicine

import (
	"errors"
	"fmt"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/errs"
	"medpanda/internal/pkg/guard"
)

var (
	// ErrMedicineIsNotConstructed is returned when a Medicine was not created
	// through NewMedicine or RestoreMedicine.
	ErrMedicineIsNotConstructed = errors.New("Medicine must be created via NewMedicine constructor")

	// ErrNameIsRequired is returned when the medicine name is empty.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrMedicineIsInactive is returned when an inactive medicine is added to a cart or checked out.
	ErrMedicineIsInactive = errs.NewValueIsInvalidError("medicine is inactive")
)

// Medicine is a catalog entry owned by exactly one pharmacy.
type Medicine struct {
	id         kernel.UUID
	pharmacyID kernel.UUID
	name       string
	category   string
	price      kernel.Money
	stock      int
	isActive   bool

	guard guard.ConstructorGuard
}

// NewMedicine creates an active catalog entry with the given opening stock.
func NewMedicine(
	id, pharmacyID kernel.UUID,
	name, category string,
	price kernel.Money,
	stock int,
) (*Medicine, error) {
	m := &Medicine{
		category: category,
		price:    price,
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setPharmacyID(pharmacyID),
		m.setName(name),
		m.setStock(stock),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMedicine reconstructs a catalog entry from persistence.
func RestoreMedicine(
	id, pharmacyID kernel.UUID,
	name, category string,
	price kernel.Money,
	stock int,
	isActive bool,
) (*Medicine, error) {
	m, err := NewMedicine(id, pharmacyID, name, category, price, stock)
	if err != nil {
		return nil, err
	}

	m.isActive = isActive
	return m, nil
}

// Validate ensures the Medicine was created through a constructor.
func (m *Medicine) Validate() error {
	if m == nil {
		return ErrMedicineIsNotConstructed
	}
	return m.guard.Validate(ErrMedicineIsNotConstructed)
}

// ID returns the medicine's unique identifier.
func (m *Medicine) ID() kernel.UUID {
	return m.id
}

// PharmacyID returns the owning pharmacy's identifier.
func (m *Medicine) PharmacyID() kernel.UUID {
	return m.pharmacyID
}

// Name returns the display name.
func (m *Medicine) Name() string {
	return m.name
}

// Category returns the catalog category.
func (m *Medicine) Category() string {
	return m.category
}

// Price returns the current unit price.
func (m *Medicine) Price() kernel.Money {
	return m.price
}

// Stock returns the units currently on hand.
func (m *Medicine) Stock() int {
	return m.stock
}

// IsActive reports whether the entry is purchasable.
func (m *Medicine) IsActive() bool {
	return m.isActive
}

// Deactivate hides the entry from purchase without deleting history.
func (m *Medicine) Deactivate() {
	m.isActive = false
}

// Activate makes the entry purchasable again.
func (m *Medicine) Activate() {
	m.isActive = true
}

// CanFulfill checks whether a purchase of the given quantity is legal:
// the entry must be active and hold enough stock. The authoritative stock
// check is the conditional decrement in the repository; this pre-check
// produces a precise error before the transaction touches the ledger.
func (m *Medicine) CanFulfill(quantity int) error {
	if !m.isActive {
		return ErrMedicineIsInactive
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if m.stock < quantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, m.stock)
	}
	return nil
}

// Reserve deducts stock for a purchase. Stock can never go negative.
func (m *Medicine) Reserve(quantity int) error {
	if err := m.CanFulfill(quantity); err != nil {
		return err
	}
	m.stock -= quantity
	return nil
}

// Release returns previously reserved stock, e.g. on cancellation.
func (m *Medicine) Release(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	m.stock += quantity
	return nil
}

func (m *Medicine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Medicine) setPharmacyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.pharmacyID = id
	return nil
}

func (m *Medicine) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *Medicine) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	m.stock = stock
	return nil
}
