package ports

import (
	"context"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/domain/model/medicine"
)

// MedicineRepository defines the persistence contract for catalog entries
// and their stock counters.
type MedicineRepository interface {
	// Add persists a new catalog entry.
	Add(ctx context.Context, aggregate *medicine.Medicine) error

	// Update persists changes to an existing catalog entry.
	Update(ctx context.Context, aggregate *medicine.Medicine) error

	// Get retrieves a catalog entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*medicine.Medicine, error)

	// GetByIDs retrieves the catalog entries for the given identifiers.
	// Missing identifiers are simply absent from the result; callers decide
	// whether that is an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*medicine.Medicine, error)

	// ReserveStock decrements stock by quantity with a storage-side
	// condition that stock never goes negative. Returns
	// ValueIsOutOfRangeError when the remaining stock is insufficient.
	ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error

	// ReleaseStock returns previously reserved stock, e.g. when an order is
	// cancelled.
	ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error
}
