package cartrepo

import (
	"context"

	"medpanda/internal/core/domain/model/cart"
	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/ports"

	"gorm.io/gorm"
)

// aggregateTracker is an interface for tracking aggregates within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

var _ ports.CartRepository = &GormCartRepository{}

// GormCartRepository implements the CartRepository interface using GORM.
type GormCartRepository struct {
	tracker aggregateTracker
	db      *gorm.DB
}

// NewGormCartRepository creates a new GORM-based cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the customer's cart. A customer with no stored lines gets a
// fresh empty cart, not an error.
func (r *GormCartRepository) Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartLineDTO
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Order("position").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	aggregate, err := toDomain(customerID, dtos)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.CustomerID(), aggregate)

	return aggregate, nil
}

// Save replaces the customer's stored lines with the cart's current lines.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Where("customer_id = ?", aggregate.CustomerID().Bytes()).
		Delete(&CartLineDTO{}).Error
	if err != nil {
		return err
	}

	dtos := fromDomain(aggregate)
	if len(dtos) > 0 {
		if err = r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.CustomerID(), aggregate)

	return nil
}
