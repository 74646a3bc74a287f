package courierrepo

import (
	"context"
	"errors"

	"medpanda/internal/core/domain/model/courier"
	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/ports"
	"medpanda/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker is an interface for tracking aggregates within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

var _ ports.CourierRepository = &GormCourierRepository{}

// GormCourierRepository implements the CourierRepository interface using GORM.
type GormCourierRepository struct {
	tracker aggregateTracker
	db      *gorm.DB
}

// NewGormCourierRepository creates a new GORM-based courier repository.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new courier profile to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := courierFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)

	return nil
}

// Update saves changes to an existing courier profile.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := courierFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":         dto.Name,
			"vehicle_type": dto.VehicleType,
			"phone":        dto.Phone,
			"is_available": dto.IsAvailable,
			"rating_total": dto.RatingTotal,
			"rating_count": dto.RatingCount,
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

// Get retrieves a courier profile by its unique identifier.
func (r *GormCourierRepository) Get(ctx context.Context, courierID kernel.UUID) (*courier.Profile, error) {
	var dto CourierDTO

	err := r.db.WithContext(ctx).First(&dto, "id = ?", courierID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", courierID.String())
		}
		return nil, err
	}

	aggregate, err := courierToDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)

	return aggregate, nil
}

// GetAll retrieves every registered courier profile, busy ones included.
func (r *GormCourierRepository) GetAll(ctx context.Context) ([]*courier.Profile, error) {
	var dtos []CourierDTO

	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	aggregates := make([]*courier.Profile, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := courierToDomain(dto)
		if err != nil {
			return nil, err
		}

		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}
