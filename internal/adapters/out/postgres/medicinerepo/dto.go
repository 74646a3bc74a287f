// Package medicinerepo provides data transfer objects and mapping functions
// for catalog persistence. The stock column is the authoritative inventory
// ledger; reservations decrement it with a conditional update so it can
// never go negative under concurrent checkouts.
package medicinerepo

import (
	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/domain/model/medicine"

	"github.com/google/uuid"
)

// MedicineDTO represents the database structure for persisting catalog entries.
type MedicineDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PharmacyID uuid.UUID `gorm:"type:uuid;index;index:idx_medicines_pharmacy_category,priority:1"`
	Name       string
	Category   string    `gorm:"index:idx_medicines_pharmacy_category,priority:2"`
	PriceCents int64
	Stock      int
	IsActive   bool
}

// TableName specifies the database table name for catalog entries.
func (MedicineDTO) TableName() string {
	return "medicines"
}

// fromDomain converts a medicine aggregate to its database representation.
func fromDomain(aggregate *medicine.Medicine) MedicineDTO {
	return MedicineDTO{
		ID:         aggregate.ID().Bytes(),
		PharmacyID: aggregate.PharmacyID().Bytes(),
		Name:       aggregate.Name(),
		Category:   aggregate.Category(),
		PriceCents: aggregate.Price().Cents(),
		Stock:      aggregate.Stock(),
		IsActive:   aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a medicine aggregate.
func toDomain(dto MedicineDTO) (*medicine.Medicine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pharmacyID, err := kernel.UUIDFromBytes(dto.PharmacyID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return medicine.RestoreMedicine(id, pharmacyID, dto.Name, dto.Category, price, dto.Stock, dto.IsActive)
}
