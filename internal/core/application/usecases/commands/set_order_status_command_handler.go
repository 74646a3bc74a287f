package commands

import (
	"context"
)

// SetOrderStatusCommandHandler applies a role-gated status change to an
// order. The per-role target table, ownership and assignee checks all live
// in the order aggregate.
type SetOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetOrderStatusCommandHandler creates a handler for status change operations.
func NewSetOrderStatusCommandHandler(uowFactory OrderUoWFactory) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h *SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) error {
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

	if err = orderAggregate.SetStatus(cmd.ActorID(), cmd.Role(), cmd.Status()); err != nil {
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
