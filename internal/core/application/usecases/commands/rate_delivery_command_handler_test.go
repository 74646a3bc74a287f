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

func TestRateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	testOrder := restoreOrderInStatus(t, customerID, kernel.NewUUID(), order.Delivered, &courierID)

	profile, err := courier.NewProfile(courierID, "Brian Otieno", "motorbike", "+2547000002")
	require.NoError(t, err)

	cmd, err := commands.NewRateDeliveryCommand(testOrder.ID(), customerID, 5)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, courierID).Return(profile, nil).Once(),
		courierRepo.On("Update", ctx, mock.AnythingOfType("*courier.Profile")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	ratedProfile := courierRepo.Calls[1].Arguments[1].(*courier.Profile)
	assert.Equal(t, 1, ratedProfile.RatingCount())
	assert.InDelta(t, 5.0, ratedProfile.AverageRating(), 0.001)
}

func TestRateDeliveryCommandHandler_Handle_UndeliveredOrderCannotBeRated(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	testOrder := restoreOrderInStatus(t, customerID, kernel.NewUUID(), order.AwaitingConfirmation, &courierID)

	cmd, err := commands.NewRateDeliveryCommand(testOrder.ID(), customerID, 4)
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

	handler := commands.NewRateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRateDeliveryCommandHandler_Handle_NonOwnerIsForbidden(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	testOrder := restoreOrderInStatus(t, kernel.NewUUID(), kernel.NewUUID(), order.Delivered, &courierID)

	cmd, err := commands.NewRateDeliveryCommand(testOrder.ID(), kernel.NewUUID(), 4)
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

	handler := commands.NewRateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrActorForbidden)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRateDeliveryCommand_RejectsOutOfRangeRating(t *testing.T) {
	_, err := commands.NewRateDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(), 6)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
