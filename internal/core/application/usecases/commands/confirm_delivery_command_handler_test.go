package commands_test

import (
	"testing"

	"medpanda/internal/core/application/usecases/commands"
	"medpanda/internal/core/domain/model/courier"
	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/domain/model/order"
	"medpanda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	testOrder := restoreOrderInStatus(t, customerID, kernel.NewUUID(), order.AwaitingConfirmation, &courierID)

	busyProfile, err := courier.RestoreProfile(courierID, "Brian Otieno", "motorbike", "+2547000002", false, 0, 0)
	require.NoError(t, err)

	cmd, err := commands.NewConfirmDeliveryCommand(testOrder.ID(), customerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, courierID).Return(busyProfile, nil).Once(),
		courierRepo.On("Update", ctx, mock.AnythingOfType("*courier.Profile")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	updatedOrder := orderRepo.Calls[1].Arguments[1].(*order.Order)
	assert.Equal(t, order.Delivered, updatedOrder.Status())
	require.NotNil(t, updatedOrder.ConfirmedAt())

	// the courier returns to the available pool
	updatedProfile := courierRepo.Calls[1].Arguments[1].(*courier.Profile)
	assert.True(t, updatedProfile.IsAvailable())
}

func TestConfirmDeliveryCommandHandler_Handle_BeforeCompletionIsInvalid(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	testOrder := restoreOrderInStatus(t, customerID, kernel.NewUUID(), order.OutForDelivery, &courierID)

	cmd, err := commands.NewConfirmDeliveryCommand(testOrder.ID(), customerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
	uow.AssertNotCalled(t, "Commit", ctx)
}
