package courierrepo

import (
	"context"
	"errors"
	"time"

	"medpanda/internal/core/domain/model/courier"
	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/ports"
	"medpanda/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.DeliveryRequestRepository = &GormDeliveryRequestRepository{}

// GormDeliveryRequestRepository implements the DeliveryRequestRepository
// interface using GORM. Acceptance and rejection are conditional updates on
// the Pending status, so a request resolves at most once no matter how many
// transactions race for it.
type GormDeliveryRequestRepository struct {
	tracker aggregateTracker
	db      *gorm.DB
}

// NewGormDeliveryRequestRepository creates a new GORM-based delivery request repository.
func NewGormDeliveryRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRequestRepository {
	return &GormDeliveryRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new delivery request to the database.
func (r *GormDeliveryRequestRepository) Add(ctx context.Context, aggregate *courier.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := requestFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)

	return nil
}

// Get retrieves a delivery request by its unique identifier.
func (r *GormDeliveryRequestRepository) Get(ctx context.Context, requestID kernel.UUID) (*courier.Request, error) {
	var dto DeliveryRequestDTO

	err := r.db.WithContext(ctx).First(&dto, "id = ?", requestID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryRequest", requestID.String())
		}
		return nil, err
	}

	aggregate, err := requestToDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)

	return aggregate, nil
}

// HasPending reports whether the courier already holds an open request for the order.
func (r *GormDeliveryRequestRepository) HasPending(ctx context.Context, orderID kernel.UUID, courierID kernel.UUID) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&DeliveryRequestDTO{}).
		Where("order_id = ? AND courier_id = ? AND status = ?",
			orderID.Bytes(), courierID.Bytes(), courier.RequestPending.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// MarkAccepted resolves a pending request as accepted by its courier.
func (r *GormDeliveryRequestRepository) MarkAccepted(
	ctx context.Context,
	requestID kernel.UUID,
	courierID kernel.UUID,
	respondedAt time.Time,
) error {
	return r.resolve(ctx, requestID, courierID, courier.RequestAccepted, respondedAt)
}

// MarkRejected resolves a pending request as rejected by its courier.
func (r *GormDeliveryRequestRepository) MarkRejected(
	ctx context.Context,
	requestID kernel.UUID,
	courierID kernel.UUID,
	respondedAt time.Time,
) error {
	return r.resolve(ctx, requestID, courierID, courier.RequestRejected, respondedAt)
}

func (r *GormDeliveryRequestRepository) resolve(
	ctx context.Context,
	requestID kernel.UUID,
	courierID kernel.UUID,
	status courier.RequestStatus,
	respondedAt time.Time,
) error {
	result := r.db.WithContext(ctx).
		Model(&DeliveryRequestDTO{}).
		Where("id = ? AND courier_id = ? AND status = ?",
			requestID.Bytes(), courierID.Bytes(), courier.RequestPending.String()).
		Updates(map[string]any{
			"status":       status.String(),
			"responded_at": respondedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var dto DeliveryRequestDTO
		err := r.db.WithContext(ctx).First(&dto, "id = ?", requestID.Bytes()).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("deliveryRequest", requestID.String())
			}
			return err
		}
		if dto.CourierID != courierID.Bytes() {
			return errs.NewActorForbiddenError(courierID.String(), "respond to delivery request")
		}
		return errs.NewAlreadyProcessedError("deliveryRequest", requestID.String())
	}

	return nil
}

// RejectSiblings closes every other pending request for the order once a
// courier has won it. Returns how many requests were withdrawn.
func (r *GormDeliveryRequestRepository) RejectSiblings(
	ctx context.Context,
	orderID kernel.UUID,
	winnerID kernel.UUID,
	respondedAt time.Time,
) (int, error) {
	result := r.db.WithContext(ctx).
		Model(&DeliveryRequestDTO{}).
		Where("order_id = ? AND id <> ? AND status = ?",
			orderID.Bytes(), winnerID.Bytes(), courier.RequestPending.String()).
		Updates(map[string]any{
			"status":       courier.RequestRejected.String(),
			"responded_at": respondedAt,
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}
