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

func TestUpdateCartCommandHandler_Handle_SetsNewQuantity(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	pharmacyID := kernel.NewUUID()
	ibuprofen := newCatalogEntry(t, pharmacyID, "Ibuprofen 400mg", 749, 20)
	existingCart := newCartWith(t, customerID, []cartLine{{medicineID: ibuprofen.ID(), quantity: 2}})

	cmd, err := commands.NewUpdateCartCommand(customerID, ibuprofen.ID(), 5)
	require.NoError(t, err)

	medicineRepo := new(MockMedicineRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("Get", ctx, ibuprofen.ID()).Return(ibuprofen, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, customerID).Return(existingCart, nil).Once(),
		cartRepo.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCartCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	medicineRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	savedCart := cartRepo.Calls[1].Arguments[1].(*cart.Cart)
	lines := savedCart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity())
}

func TestUpdateCartCommandHandler_Handle_ZeroQuantityRemovesLine(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	medicineID := kernel.NewUUID()
	existingCart := newCartWith(t, customerID, []cartLine{{medicineID: medicineID, quantity: 3}})

	cmd, err := commands.NewUpdateCartCommand(customerID, medicineID, 0)
	require.NoError(t, err)

	medicineRepo := new(MockMedicineRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, customerID).Return(existingCart, nil).Once(),
		cartRepo.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCartCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	medicineRepo.AssertNotCalled(t, "Get", ctx, mock.Anything)

	savedCart := cartRepo.Calls[1].Arguments[1].(*cart.Cart)
	assert.Empty(t, savedCart.Lines())
}

func TestUpdateCartCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	pharmacyID := kernel.NewUUID()
	amoxicillin := newCatalogEntry(t, pharmacyID, "Amoxicillin 250mg", 1250, 1)

	cmd, err := commands.NewUpdateCartCommand(customerID, amoxicillin.ID(), 5)
	require.NoError(t, err)

	medicineRepo := new(MockMedicineRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("Get", ctx, amoxicillin.ID()).Return(amoxicillin, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCartCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	cartRepo.AssertNotCalled(t, "Save", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
