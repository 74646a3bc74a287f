package ports

import (
	"context"
	"time"

	"medpanda/internal/core/domain/model/courier"
	"medpanda/internal/core/domain/model/kernel"
)

// DeliveryRequestRepository defines the persistence contract for delivery
// requests. Resolution methods are conditional updates keyed on the Pending
// status, so concurrent responses to the same broadcast settle to exactly
// one winner at the storage level.
type DeliveryRequestRepository interface {
	// Add persists a new delivery request.
	Add(ctx context.Context, aggregate *courier.Request) error

	// Get retrieves a delivery request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Request, error)

	// HasPending reports whether the courier already has an unresolved
	// request for the order. Re-broadcast uses this to avoid duplicate
	// offers.
	HasPending(ctx context.Context, orderID, courierID kernel.UUID) (bool, error)

	// MarkAccepted resolves the request in the courier's favor, but only if
	// it is still pending and addressed to that courier. Returns
	// AlreadyProcessedError when the request was already resolved.
	MarkAccepted(ctx context.Context, requestID, courierID kernel.UUID, respondedAt time.Time) error

	// MarkRejected resolves the request as declined, under the same
	// conditions as MarkAccepted.
	MarkRejected(ctx context.Context, requestID, courierID kernel.UUID, respondedAt time.Time) error

	// RejectSiblings resolves every other pending request for the order
	// once a winner is chosen. Returns the number of requests closed.
	RejectSiblings(ctx context.Context, orderID, winnerID kernel.UUID, respondedAt time.Time) (int, error)
}
