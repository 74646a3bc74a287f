package queries

import (
	"errors"
	"time"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/guard"
)

var ErrGetPendingRequestsQueryIsNotConstructed = errors.New(
	"GetPendingRequestsQuery must be created via NewGetPendingRequestsQuery constructor",
)

// GetPendingRequestsQuery retrieves the delivery requests a courier has not
// responded to yet, oldest first.
type GetPendingRequestsQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingRequestsQuery creates a query for the given courier.
func NewGetPendingRequestsQuery(courierID kernel.UUID) (GetPendingRequestsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetPendingRequestsQuery{}, err
	}
	return GetPendingRequestsQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingRequestsQueryIsNotConstructed)
}

// CourierID returns the courier whose inbox is listed.
func (q GetPendingRequestsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetPendingRequestsQueryResponse is one open offer in a courier's inbox.
// The order facts are the snapshot taken at broadcast time.
type GetPendingRequestsQueryResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Total       kernel.Money
	ItemCount   int
	Address     string
	RequestedAt time.Time
}
