package services

import (
	"errors"

	"medpanda/internal/core/domain/model/cart"
	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/domain/model/medicine"
	"medpanda/internal/core/domain/model/order"
	"medpanda/internal/pkg/errs"
)

// ErrMixedPharmacies is returned when a checkout selection spans catalog
// entries owned by more than one pharmacy. An order is fulfilled by exactly
// one pharmacy, so such selections must be split into separate checkouts.
var ErrMixedPharmacies = errors.New("selected medicines belong to more than one pharmacy")

// CheckoutAssembler is a domain service that turns a cart selection into
// order items with prices frozen at checkout time.
//
// Key responsibilities:
//   - Resolving each cart line against the current catalog
//   - Rejecting selections an order could not legally contain
//   - Snapshotting name, category and unit price into order items
//
// Business rules:
//   - The selection must not be empty
//   - Every selected medicine must exist, be active and have enough stock
//   - All selected medicines must belong to the same pharmacy
type CheckoutAssembler struct{}

// NewCheckoutAssembler creates a new CheckoutAssembler instance.
func NewCheckoutAssembler() CheckoutAssembler {
	return CheckoutAssembler{}
}

// Assemble resolves the selected cart lines against the given catalog
// entries and returns the order items together with the owning pharmacy.
//
// The medicines slice is a lookup set; entries not referenced by a line are
// ignored. A line whose medicine is missing from the set yields an
// ObjectNotFoundError, which callers surface as an unknown medicine.
func (a CheckoutAssembler) Assemble(
	lines []cart.Line,
	medicines []*medicine.Medicine,
) ([]order.Item, kernel.UUID, error) {
	if len(lines) == 0 {
		return nil, kernel.UUID{}, errs.NewValueIsRequiredError("items")
	}

	byID := make(map[kernel.UUID]*medicine.Medicine, len(medicines))
	for _, m := range medicines {
		if err := m.Validate(); err != nil {
			return nil, kernel.UUID{}, err
		}
		byID[m.ID()] = m
	}

	var pharmacyID kernel.UUID
	items := make([]order.Item, 0, len(lines))

	for _, line := range lines {
		m, ok := byID[line.MedicineID()]
		if !ok {
			return nil, kernel.UUID{}, errs.NewObjectNotFoundError("medicine", line.MedicineID().String())
		}

		if err := m.CanFulfill(line.Quantity()); err != nil {
			return nil, kernel.UUID{}, err
		}

		if err := pharmacyID.Validate(); err != nil {
			pharmacyID = m.PharmacyID()
		} else if !pharmacyID.IsEqual(m.PharmacyID()) {
			return nil, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("items", ErrMixedPharmacies)
		}

		item, err := order.NewItem(m.ID(), m.Name(), m.Category(), m.Price(), line.Quantity())
		if err != nil {
			return nil, kernel.UUID{}, err
		}
		items = append(items, item)
	}

	return items, pharmacyID, nil
}
