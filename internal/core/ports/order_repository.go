package ports

import (
	"context"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AssignDelivery atomically moves the order from Ready for Delivery to
	// Out for Delivery and records the courier, in a single conditional
	// update. Returns AlreadyProcessedError when the order exists but is no
	// longer awaiting a courier, which is how a lost acceptance race
	// surfaces.
	AssignDelivery(ctx context.Context, orderID, courierID kernel.UUID) error
}
