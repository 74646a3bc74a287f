package ports

import (
	"context"

	"medpanda/internal/core/domain/model/cart"
	"medpanda/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for customer carts.
// A cart always exists conceptually; loading an unknown customer yields an
// empty cart rather than an error.
type CartRepository interface {
	// Get retrieves the customer's cart, empty if nothing was staged yet.
	Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// Save persists the cart's current lines, replacing whatever was
	// stored before.
	Save(ctx context.Context, aggregate *cart.Cart) error
}
