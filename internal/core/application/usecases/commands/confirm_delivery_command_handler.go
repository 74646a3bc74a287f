package commands

import (
	"context"
	"time"
)

// ConfirmDeliveryCommandHandler closes the delivery loop: the customer
// confirms receipt, the order reaches its terminal Delivered status and
// the courier returns to the available pool in the same transaction.
type ConfirmDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for confirmation operations.
func NewConfirmDeliveryCommandHandler(uowFactory DeliveryUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	orderRepo := uow.OrderRepository()
	orderAggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderAggregate.ConfirmDelivery(cmd.CustomerID(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	courierRepo := uow.CourierRepository()
	profile, err := courierRepo.Get(ctx, *orderAggregate.Courier())
	if err != nil {
		return err
	}

	profile.MarkAvailable()
	if err = courierRepo.Update(ctx, profile); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
