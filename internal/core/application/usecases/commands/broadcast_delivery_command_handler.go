package commands

import (
	"context"
	"time"

	"medpanda/internal/core/domain/model/courier"
	"medpanda/internal/core/domain/model/kernel"
)

// BroadcastDeliveryCommandHandler offers an order to every registered
// courier by creating one pending delivery request per candidate. Busy
// couriers are included; acceptance resolves contention, not the broadcast.
//
// Broadcasting is idempotent per courier: a courier who already holds a
// pending request for the order is skipped, so a re-broadcast only reaches
// couriers who registered or rejected since the last one.
type BroadcastDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewBroadcastDeliveryCommandHandler creates a handler for broadcast operations.
func NewBroadcastDeliveryCommandHandler(uowFactory DeliveryUoWFactory) BroadcastDeliveryCommandHandler {
	return BroadcastDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the broadcast command and returns the number of couriers
// the offer reached.
func (h *BroadcastDeliveryCommandHandler) Handle(ctx context.Context, cmd BroadcastDeliveryCommand) (int, error) {
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

	orderRepo := uow.OrderRepository()
	orderAggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	if err = orderAggregate.MarkReadyForDelivery(cmd.PharmacyID()); err != nil {
		return 0, err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return 0, err
	}

	candidates, err := uow.CourierRepository().GetAll(ctx)
	if err != nil {
		return 0, err
	}

	summary := courier.OrderSummary{
		Total:     orderAggregate.Total(),
		ItemCount: orderAggregate.ItemCount(),
		Address:   orderAggregate.Address(),
	}

	requestRepo := uow.DeliveryRequestRepository()
	now := time.Now()
	reached := 0

	for _, candidate := range candidates {
		pending, err := requestRepo.HasPending(ctx, cmd.OrderID(), candidate.ID())
		if err != nil {
			return 0, err
		}
		if pending {
			continue
		}

		request, err := courier.NewRequest(
			kernel.NewUUID(), cmd.OrderID(), candidate.ID(), cmd.PharmacyID(),
			summary, now,
		)
		if err != nil {
			return 0, err
		}

		if err = requestRepo.Add(ctx, request); err != nil {
			return 0, err
		}
		reached++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return reached, nil
}
