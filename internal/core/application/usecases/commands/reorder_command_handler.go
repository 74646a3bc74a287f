package commands

import (
	"context"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/domain/model/medicine"
	"medpanda/internal/pkg/errs"
)

// ReorderCommandHandler stages a past order's items in the customer's cart
// again. Lines whose medicine has since been deactivated, removed or sold
// out are skipped; quantities merge with whatever is already staged. The
// hard stock reservation still happens at checkout.
type ReorderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewReorderCommandHandler creates a handler for reorder operations.
func NewReorderCommandHandler(uowFactory CheckoutUoWFactory) ReorderCommandHandler {
	return ReorderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reorder command and returns the number of units
// staged. Zero means every line was skipped; the cart is left untouched.
func (h *ReorderCommandHandler) Handle(ctx context.Context, cmd ReorderCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	if !orderAggregate.CustomerID().IsEqual(cmd.CustomerID()) {
		return 0, errs.NewActorForbiddenError(cmd.CustomerID().String(), "reorder")
	}

	items := orderAggregate.Items()
	ids := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.MedicineID())
	}

	medicines, err := uow.MedicineRepository().GetByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	byID := make(map[kernel.UUID]*medicine.Medicine, len(medicines))
	for _, m := range medicines {
		byID[m.ID()] = m
	}

	cartRepo := uow.CartRepository()
	cartAggregate, err := cartRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return 0, err
	}

	staged := 0
	for _, item := range items {
		m, ok := byID[item.MedicineID()]
		if !ok || !m.IsActive() || m.Stock() < 1 {
			continue
		}

		if err = cartAggregate.Add(item.MedicineID(), item.Quantity()); err != nil {
			return 0, err
		}
		staged += item.Quantity()
	}

	if staged == 0 {
		return 0, nil
	}

	if err = cartRepo.Save(ctx, cartAggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return staged, nil
}
