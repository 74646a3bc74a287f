package commands

import (
	"context"
)

// UpdateCartCommandHandler handles quantity updates and line removal in the
// customer's cart.
type UpdateCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartCommandHandler creates a handler for cart update operations.
func NewUpdateCartCommandHandler(uowFactory CartUoWFactory) UpdateCartCommandHandler {
	return UpdateCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. Setting a positive quantity checks
// the medicine the same way staging does; removal needs no catalog lookup.
func (h *UpdateCartCommandHandler) Handle(ctx context.Context, cmd UpdateCartCommand) error {
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

	if cmd.Quantity() > 0 {
		medicineAggregate, err := uow.MedicineRepository().Get(ctx, cmd.MedicineID())
		if err != nil {
			return err
		}

		if err = medicineAggregate.CanFulfill(cmd.Quantity()); err != nil {
			return err
		}
	}

	cartRepo := uow.CartRepository()
	cartAggregate, err := cartRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = cartAggregate.Update(cmd.MedicineID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, cartAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
