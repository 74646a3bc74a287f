package medicinerepo

import (
	"context"
	"errors"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/domain/model/medicine"
	"medpanda/internal/core/ports"
	"medpanda/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// aggregateTracker is an interface for tracking aggregates within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

var _ ports.MedicineRepository = &GormMedicineRepository{}

// GormMedicineRepository implements the MedicineRepository interface using GORM.
type GormMedicineRepository struct {
	tracker aggregateTracker
	db      *gorm.DB
}

// NewGormMedicineRepository creates a new GORM-based medicine repository.
func NewGormMedicineRepository(db *gorm.DB, tracker aggregateTracker) *GormMedicineRepository {
	return &GormMedicineRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new catalog entry to the database.
func (r *GormMedicineRepository) Add(ctx context.Context, aggregate *medicine.Medicine) error {
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

// Update saves changes to an existing catalog entry.
func (r *GormMedicineRepository) Update(ctx context.Context, aggregate *medicine.Medicine) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MedicineDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":        dto.Name,
			"category":    dto.Category,
			"price_cents": dto.PriceCents,
			"stock":       dto.Stock,
			"is_active":   dto.IsActive,
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

// Get retrieves a catalog entry by its unique identifier.
func (r *GormMedicineRepository) Get(ctx context.Context, medicineID kernel.UUID) (*medicine.Medicine, error) {
	var dto MedicineDTO

	err := r.db.WithContext(ctx).First(&dto, "id = ?", medicineID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("medicine", medicineID.String())
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

// GetByIDs retrieves the catalog entries for the given identifiers. Missing
// identifiers are simply absent from the result, the caller decides whether
// that is an error.
func (r *GormMedicineRepository) GetByIDs(ctx context.Context, medicineIDs []kernel.UUID) ([]*medicine.Medicine, error) {
	ids := make([]uuid.UUID, 0, len(medicineIDs))
	for _, id := range medicineIDs {
		ids = append(ids, id.Bytes())
	}

	var dtos []MedicineDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, err
	}

	aggregates := make([]*medicine.Medicine, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}

		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}

// ReserveStock atomically decrements stock for a purchase. The decrement only
// applies while enough stock remains, so the ledger can never go negative.
func (r *GormMedicineRepository) ReserveStock(ctx context.Context, medicineID kernel.UUID, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&MedicineDTO{}).
		Where("id = ? AND stock >= ?", medicineID.Bytes(), quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var dto MedicineDTO
		err := r.db.WithContext(ctx).First(&dto, "id = ?", medicineID.Bytes()).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("medicine", medicineID.String())
			}
			return err
		}
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, dto.Stock)
	}

	return nil
}

// ReleaseStock returns previously reserved stock, e.g. on cancellation.
func (r *GormMedicineRepository) ReleaseStock(ctx context.Context, medicineID kernel.UUID, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&MedicineDTO{}).
		Where("id = ?", medicineID.Bytes()).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("medicine", medicineID.String())
	}

	return nil
}
