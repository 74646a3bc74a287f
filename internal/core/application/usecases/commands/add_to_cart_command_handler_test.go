package commands_test

import (
	"testing"

	"medpanda/internal/core/application/usecases/commands"
	"medpanda/internal/core/domain/model/cart"
	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddToCartCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	pharmacyID := kernel.NewUUID()
	paracetamol := newCatalogEntry(t, pharmacyID, "Paracetamol 500mg", 599, 10)
	emptyCart := newCartWith(t, customerID, nil)

	cmd, err := commands.NewAddToCartCommand(customerID, paracetamol.ID(), 2)
	require.NoError(t, err)

	medicineRepo := new(MockMedicineRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("Get", ctx, paracetamol.ID()).Return(paracetamol, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, customerID).Return(emptyCart, nil).Once(),
		cartRepo.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddToCartCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	medicineRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	savedCart := cartRepo.Calls[1].Arguments[1].(*cart.Cart)
	lines := savedCart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity())
}

func TestAddToCartCommandHandler_Handle_UnknownMedicine(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	medicineID := kernel.NewUUID()

	cmd, err := commands.NewAddToCartCommand(customerID, medicineID, 1)
	require.NoError(t, err)

	medicineRepo := new(MockMedicineRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("Get", ctx, medicineID).
			Return(nil, errs.NewObjectNotFoundError("medicine", medicineID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddToCartCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAddToCartCommand_RejectsZeroQuantity(t *testing.T) {
	_, err := commands.NewAddToCartCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
