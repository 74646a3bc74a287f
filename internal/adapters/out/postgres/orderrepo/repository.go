package orderrepo

import (
	"context"
	"errors"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/domain/model/order"
	"medpanda/internal/core/ports"
	"medpanda/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker is an interface for tracking aggregates within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

var _ ports.OrderRepository = &GormOrderRepository{}

// GormOrderRepository implements the OrderRepository interface using GORM.
type GormOrderRepository struct {
	tracker aggregateTracker
	db      *gorm.DB
}

// NewGormOrderRepository creates a new GORM-based order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new order aggregate to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)

	return nil
}

// Update saves changes to an existing order aggregate. Order lines are
// immutable after checkout, only the order row itself is written.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":       dto.Status,
			"courier_id":   dto.CourierID,
			"delivered_at": dto.DeliveredAt,
			"confirmed_at": dto.ConfirmedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)

	return nil
}

// Get retrieves an order aggregate by its unique identifier.
func (r *GormOrderRepository) Get(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	var dto OrderDTO

	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&dto, "id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return nil, err
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)

	return aggregate, nil
}

// AssignDelivery atomically moves a broadcast order to Out for Delivery and
// records the winning courier. The row is updated only while it is still
// unassigned, so concurrent acceptances resolve to exactly one winner.
func (r *GormOrderRepository) AssignDelivery(ctx context.Context, orderID kernel.UUID, courierID kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND courier_id IS NULL", orderID.Bytes(), order.ReadyForDelivery.String()).
		Updates(map[string]any{
			"status":     order.OutForDelivery.String(),
			"courier_id": courierID.Bytes(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&OrderDTO{}).
			Where("id = ?", orderID.Bytes()).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", orderID.String())
		}
		return errs.NewAlreadyProcessedError("order", orderID.String())
	}

	return nil
}
