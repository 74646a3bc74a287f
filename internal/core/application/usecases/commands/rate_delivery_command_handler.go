package commands

import (
	"context"

	"medpanda/internal/core/domain/model/order"
	"medpanda/internal/pkg/errs"
)

// RateDeliveryCommandHandler folds a customer's rating into the courier's
// profile. Only the order's owner may rate, and only once the order has
// reached its terminal Delivered status.
type RateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewRateDeliveryCommandHandler creates a handler for rating operations.
func NewRateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) RateDeliveryCommandHandler {
	return RateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating command.
func (h *RateDeliveryCommandHandler) Handle(ctx context.Context, cmd RateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !orderAggregate.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewActorForbiddenError(cmd.CustomerID().String(), "rate delivery")
	}

	if orderAggregate.Status() != order.Delivered {
		return errs.NewTransitionIsInvalidError(orderAggregate.Status().String(), order.Delivered.String())
	}

	courierRepo := uow.CourierRepository()
	profile, err := courierRepo.Get(ctx, *orderAggregate.Courier())
	if err != nil {
		return err
	}

	if err = profile.RecordRating(cmd.Rating()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, profile); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
