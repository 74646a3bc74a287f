// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database.
package queries

import (
	"errors"
	"time"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/domain/model/order"
	"medpanda/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves a customer's orders, newest first.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for the given customer.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are listed.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerOrdersQueryResponse is one row of the customer's order list.
// Totals are aggregated from the order's item snapshots.
type GetCustomerOrdersQueryResponse struct {
	ID        kernel.UUID
	Status    order.Status
	Total     kernel.Money
	ItemCount int
	Address   string
	CourierID *kernel.UUID
	CreatedAt time.Time
}
