// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its string form so raw queries and the database stay
// readable. UpdatedAt is maintained by GORM and drives stale broadcast
// detection.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	PharmacyID   uuid.UUID  `gorm:"type:uuid;index"`
	CourierID    *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName string
	Phone        string
	Address      string
	Notes        string
	Status       string         `gorm:"type:varchar(32);index"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
	DeliveredAt  *time.Time
	ConfirmedAt  *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one immutable order line with the price snapshot
// taken at checkout.
type OrderItemDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	MedicineID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	Category       string
	UnitPriceCents int64
	Quantity       int
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:        aggregate.ID().Bytes(),
			MedicineID:     item.MedicineID().Bytes(),
			Name:           item.Name(),
			Category:       item.Category(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		PharmacyID:   aggregate.PharmacyID().Bytes(),
		CourierID:    courierID,
		CustomerName: aggregate.CustomerName(),
		Phone:        aggregate.Phone(),
		Address:      aggregate.Address(),
		Notes:        aggregate.Notes(),
		Status:       aggregate.Status().String(),
		Items:        itemDTOs,
		CreatedAt:    aggregate.CreatedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		ConfirmedAt:  aggregate.ConfirmedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	pharmacyID, err := kernel.UUIDFromBytes(dto.PharmacyID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		medicineID, idErr := kernel.UUIDFromBytes(itemDTO.MedicineID[:])
		if idErr != nil {
			return nil, idErr
		}

		unitPrice, priceErr := kernel.NewMoneyFromCents(itemDTO.UnitPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(medicineID, itemDTO.Name, itemDTO.Category, unitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, customerID, pharmacyID,
		dto.CustomerName, dto.Phone, dto.Address, dto.Notes,
		items, status, courierID,
		dto.CreatedAt, dto.DeliveredAt, dto.ConfirmedAt,
	)
}
