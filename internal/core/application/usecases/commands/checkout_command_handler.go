package commands

import (
	"context"
	"time"

	"medpanda/internal/core/domain/model/order"
	"medpanda/internal/core/domain/services"
	"medpanda/internal/pkg/errs"
)

// CheckoutCommandHandler turns a cart selection into a persisted order.
//
// The whole checkout is one transaction: the cart is loaded, the selection
// is resolved against the catalog, the order is created, stock is reserved
// line by line with storage-side conditions and the purchased lines are
// removed from the cart. Any failure rolls the whole thing back, so stock
// is never held by an order that was not created.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	assembler  services.CheckoutAssembler
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		assembler:  services.NewCheckoutAssembler(),
	}
}

// Handle processes the checkout command.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
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

	cartRepo := uow.CartRepository()
	cartAggregate, err := cartRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	lines := cartAggregate.Select(cmd.MedicineIDs())
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	medicineRepo := uow.MedicineRepository()
	medicines, err := medicineRepo.GetByIDs(ctx, cmd.MedicineIDs())
	if err != nil {
		return err
	}

	items, pharmacyID, err := h.assembler.Assemble(lines, medicines)
	if err != nil {
		return err
	}

	orderAggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), pharmacyID,
		cmd.CustomerName(), cmd.Phone(), cmd.Address(), cmd.Notes(),
		items, time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, orderAggregate); err != nil {
		return err
	}

	for _, line := range lines {
		if err = medicineRepo.ReserveStock(ctx, line.MedicineID(), line.Quantity()); err != nil {
			return err
		}
	}

	cartAggregate.RemoveLines(cmd.MedicineIDs())
	if err = cartRepo.Save(ctx, cartAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
