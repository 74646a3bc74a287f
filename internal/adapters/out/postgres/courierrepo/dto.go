// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence. It covers both courier profiles and the delivery
// requests fanned out to them, since the two are written together when an
// acceptance resolves.
package courierrepo

import (
	"time"

	"medpanda/internal/core/domain/model/courier"
	"medpanda/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier profiles.
type CourierDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	VehicleType string
	Phone       string
	IsAvailable bool `gorm:"index"`
	RatingTotal int
	RatingCount int
}

// TableName specifies the database table name for courier profiles.
func (CourierDTO) TableName() string {
	return "couriers"
}

// DeliveryRequestDTO represents one delivery offer sent to one courier.
// Status is stored as its string form, the order summary columns are a
// snapshot taken at broadcast time.
type DeliveryRequestDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	CourierID   uuid.UUID `gorm:"type:uuid;index"`
	PharmacyID  uuid.UUID `gorm:"type:uuid"`
	Status      string    `gorm:"type:varchar(32);index"`
	TotalCents  int64
	ItemCount   int
	Address     string
	RequestedAt time.Time
	RespondedAt *time.Time
}

// TableName specifies the database table name for delivery requests.
func (DeliveryRequestDTO) TableName() string {
	return "delivery_requests"
}

// courierFromDomain converts a courier profile to its database representation.
func courierFromDomain(aggregate *courier.Profile) CourierDTO {
	return CourierDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		VehicleType: aggregate.VehicleType(),
		Phone:       aggregate.Phone(),
		IsAvailable: aggregate.IsAvailable(),
		RatingTotal: aggregate.RatingTotal(),
		RatingCount: aggregate.RatingCount(),
	}
}

// courierToDomain converts a database DTO to a courier profile.
func courierToDomain(dto CourierDTO) (*courier.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreProfile(
		id,
		dto.Name, dto.VehicleType, dto.Phone,
		dto.IsAvailable,
		dto.RatingTotal, dto.RatingCount,
	)
}

// requestFromDomain converts a delivery request to its database representation.
func requestFromDomain(aggregate *courier.Request) DeliveryRequestDTO {
	return DeliveryRequestDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		CourierID:   aggregate.CourierID().Bytes(),
		PharmacyID:  aggregate.PharmacyID().Bytes(),
		Status:      aggregate.Status().String(),
		TotalCents:  aggregate.Summary().Total.Cents(),
		ItemCount:   aggregate.Summary().ItemCount,
		Address:     aggregate.Summary().Address,
		RequestedAt: aggregate.RequestedAt(),
		RespondedAt: aggregate.RespondedAt(),
	}
}

// requestToDomain converts a database DTO to a delivery request.
func requestToDomain(dto DeliveryRequestDTO) (*courier.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	pharmacyID, err := kernel.UUIDFromBytes(dto.PharmacyID[:])
	if err != nil {
		return nil, err
	}

	status, err := courier.RequestStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoneyFromCents(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	return courier.RestoreRequest(
		id, orderID, courierID, pharmacyID,
		status,
		courier.OrderSummary{
			Total:     total,
			ItemCount: dto.ItemCount,
			Address:   dto.Address,
		},
		dto.RequestedAt, dto.RespondedAt,
	)
}
