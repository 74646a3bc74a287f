package commands

import (
	"context"
)

// CancelOrderCommandHandler handles order cancellation. Cancelling returns
// every reserved line back to the stock ledger in the same transaction that
// flips the order status.
type CancelOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for cancellation operations.
func NewCancelOrderCommandHandler(uowFactory FulfillmentUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command. Ownership and the status gate
// are enforced by the order aggregate.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = orderAggregate.Cancel(cmd.CustomerID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	medicineRepo := uow.MedicineRepository()
	for _, item := range orderAggregate.Items() {
		if err = medicineRepo.ReleaseStock(ctx, item.MedicineID(), item.Quantity()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
