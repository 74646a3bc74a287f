package commands

import (
	"context"
	"time"
)

// AcceptDeliveryRequestCommandHandler settles the first-acceptance-wins
// race for a broadcast order.
//
// Both the request resolution and the order assignment are conditional
// updates keyed on the current state, so two couriers accepting at once
// cannot both win: the loser's update matches zero rows and surfaces as
// AlreadyProcessedError. The winner's transaction also rejects every other
// pending request for the order and marks the courier busy.
type AcceptDeliveryRequestCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAcceptDeliveryRequestCommandHandler creates a handler for acceptance operations.
func NewAcceptDeliveryRequestCommandHandler(uowFactory DeliveryUoWFactory) AcceptDeliveryRequestCommandHandler {
	return AcceptDeliveryRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
func (h *AcceptDeliveryRequestCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryRequestCommand) error {
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

	now := time.Now()

	requestRepo := uow.DeliveryRequestRepository()
	if err := requestRepo.MarkAccepted(ctx, cmd.RequestID(), cmd.CourierID(), now); err != nil {
		return err
	}

	request, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().AssignDelivery(ctx, request.OrderID(), cmd.CourierID()); err != nil {
		return err
	}

	courierRepo := uow.CourierRepository()
	profile, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	profile.MarkBusy()
	if err = courierRepo.Update(ctx, profile); err != nil {
		return err
	}

	if _, err = requestRepo.RejectSiblings(ctx, request.OrderID(), cmd.RequestID(), now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
