// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. A cart is stored as its lines only; a customer with no
// rows simply has an empty cart.
package cartrepo

import (
	"medpanda/internal/core/domain/model/cart"
	"medpanda/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartLineDTO represents one cart line. Position keeps the lines in the
// order the customer added them.
type CartLineDTO struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	MedicineID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity   int
	Position   int
}

// TableName specifies the database table name for cart lines.
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

// fromDomain converts a cart aggregate to its line rows.
func fromDomain(aggregate *cart.Cart) []CartLineDTO {
	lines := aggregate.Lines()
	dtos := make([]CartLineDTO, 0, len(lines))
	for i, line := range lines {
		dtos = append(dtos, CartLineDTO{
			CustomerID: aggregate.CustomerID().Bytes(),
			MedicineID: line.MedicineID().Bytes(),
			Quantity:   line.Quantity(),
			Position:   i,
		})
	}
	return dtos
}

// toDomain rebuilds a cart aggregate from its line rows.
func toDomain(customerID kernel.UUID, dtos []CartLineDTO) (*cart.Cart, error) {
	lines := make([]cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		medicineID, err := kernel.UUIDFromBytes(dto.MedicineID[:])
		if err != nil {
			return nil, err
		}

		line, err := cart.NewLine(medicineID, dto.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(customerID, lines)
}
