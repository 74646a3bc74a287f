package commands

import (
	"context"
)

// AddToCartCommandHandler handles the business logic for staging medicines.
// The staged medicine must exist, be active and plausibly fulfillable at
// the staged quantity; the hard stock reservation happens at checkout.
type AddToCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddToCartCommandHandler creates a handler for cart staging operations.
func NewAddToCartCommandHandler(uowFactory CartUoWFactory) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the staging command.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
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

	medicineAggregate, err := uow.MedicineRepository().Get(ctx, cmd.MedicineID())
	if err != nil {
		return err
	}

	if err = medicineAggregate.CanFulfill(cmd.Quantity()); err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	cartAggregate, err := cartRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = cartAggregate.Add(cmd.MedicineID(), cmd.Quantity()); err != nil {
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
