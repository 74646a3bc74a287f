package ports

import (
	"context"

	"medpanda/internal/core/domain/model/courier"
	"medpanda/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier profiles.
type CourierRepository interface {
	// Add persists a new courier profile.
	Add(ctx context.Context, aggregate *courier.Profile) error

	// Update persists changes to an existing courier profile.
	Update(ctx context.Context, aggregate *courier.Profile) error

	// Get retrieves a courier profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Profile, error)

	// GetAll retrieves every registered courier profile. Broadcast uses
	// this as the candidate pool regardless of current availability.
	GetAll(ctx context.Context) ([]*courier.Profile, error)
}
