package commands

import (
	"context"
	"time"
)

// CompleteDeliveryCommandHandler moves an order to Awaiting Confirmation
// when the assigned courier reports the handover. The courier stays busy
// until the customer confirms receipt.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for completion operations.
func NewCompleteDeliveryCommandHandler(uowFactory OrderUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command. The assignee check and the
// status gate are enforced by the order aggregate.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	if err = orderAggregate.CompleteDelivery(cmd.CourierID(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
