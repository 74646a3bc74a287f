package services_test

import (
	"testing"

	"medpanda/internal/core/domain/model/cart"
	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/domain/model/medicine"
	"medpanda/internal/core/domain/services"
	"medpanda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogEntry(t *testing.T, pharmacyID kernel.UUID, name string, cents int64, stock int) *medicine.Medicine {
	t.Helper()

	price, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)

	m, err := medicine.NewMedicine(kernel.NewUUID(), pharmacyID, name, "Pain Relief", price, stock)
	require.NoError(t, err)
	return m
}

func mustLine(t *testing.T, medicineID kernel.UUID, quantity int) cart.Line {
	t.Helper()

	line, err := cart.NewLine(medicineID, quantity)
	require.NoError(t, err)
	return line
}

func TestCheckoutAssemblerAssemble(t *testing.T) {
	assembler := services.NewCheckoutAssembler()
	pharmacyID := kernel.NewUUID()

	t.Run("snapshots_catalog_prices_into_items", func(t *testing.T) {
		paracetamol := newCatalogEntry(t, pharmacyID, "Paracetamol 500mg", 599, 10)
		ibuprofen := newCatalogEntry(t, pharmacyID, "Ibuprofen 200mg", 1250, 10)
		lines := []cart.Line{
			mustLine(t, paracetamol.ID(), 2),
			mustLine(t, ibuprofen.ID(), 1),
		}

		items, owner, err := assembler.Assemble(lines, []*medicine.Medicine{paracetamol, ibuprofen})

		require.NoError(t, err)
		assert.True(t, owner.IsEqual(pharmacyID))
		require.Len(t, items, 2)
		assert.Equal(t, "Paracetamol 500mg", items[0].Name())
		assert.Equal(t, int64(1198), items[0].LineTotal().Cents())
		assert.Equal(t, int64(1250), items[1].LineTotal().Cents())
	})

	t.Run("empty_selection_is_rejected", func(t *testing.T) {
		_, _, err := assembler.Assemble(nil, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown_medicine_is_not_found", func(t *testing.T) {
		paracetamol := newCatalogEntry(t, pharmacyID, "Paracetamol 500mg", 599, 10)
		lines := []cart.Line{mustLine(t, kernel.NewUUID(), 1)}

		_, _, err := assembler.Assemble(lines, []*medicine.Medicine{paracetamol})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("insufficient_stock_fails_the_whole_checkout", func(t *testing.T) {
		paracetamol := newCatalogEntry(t, pharmacyID, "Paracetamol 500mg", 599, 1)
		lines := []cart.Line{mustLine(t, paracetamol.ID(), 2)}

		_, _, err := assembler.Assemble(lines, []*medicine.Medicine{paracetamol})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("inactive_medicine_is_rejected", func(t *testing.T) {
		paracetamol := newCatalogEntry(t, pharmacyID, "Paracetamol 500mg", 599, 10)
		paracetamol.Deactivate()
		lines := []cart.Line{mustLine(t, paracetamol.ID(), 1)}

		_, _, err := assembler.Assemble(lines, []*medicine.Medicine{paracetamol})

		require.Error(t, err)
		require.ErrorIs(t, err, medicine.ErrMedicineIsInactive)
	})

	t.Run("selection_across_pharmacies_is_rejected", func(t *testing.T) {
		paracetamol := newCatalogEntry(t, pharmacyID, "Paracetamol 500mg", 599, 10)
		foreign := newCatalogEntry(t, kernel.NewUUID(), "Ibuprofen 200mg", 1250, 10)
		lines := []cart.Line{
			mustLine(t, paracetamol.ID(), 1),
			mustLine(t, foreign.ID(), 1),
		}

		_, _, err := assembler.Assemble(lines, []*medicine.Medicine{paracetamol, foreign})

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrMixedPharmacies)
	})
}
