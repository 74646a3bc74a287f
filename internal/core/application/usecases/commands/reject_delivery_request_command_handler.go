package commands

import (
	"context"
	"time"
)

// RejectDeliveryRequestCommandHandler records a courier declining an offer.
// Rejection only touches the request row; the order stays broadcast and
// other couriers' requests remain open.
type RejectDeliveryRequestCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewRejectDeliveryRequestCommandHandler creates a handler for rejection operations.
func NewRejectDeliveryRequestCommandHandler(uowFactory DeliveryUoWFactory) RejectDeliveryRequestCommandHandler {
	return RejectDeliveryRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
func (h *RejectDeliveryRequestCommandHandler) Handle(ctx context.Context, cmd RejectDeliveryRequestCommand) error {
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

	if err := uow.DeliveryRequestRepository().MarkRejected(ctx, cmd.RequestID(), cmd.CourierID(), time.Now()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
