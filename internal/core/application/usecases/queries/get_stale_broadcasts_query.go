package queries

import (
	"errors"
	"fmt"
	"time"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/errs"
	"medpanda/internal/pkg/guard"
)

var ErrGetStaleBroadcastsQueryIsNotConstructed = errors.New(
	"GetStaleBroadcastsQuery must be created via NewGetStaleBroadcastsQuery constructor",
)

// GetStaleBroadcastsQuery retrieves orders that were broadcast to couriers
// but have had no acceptance for at least the given duration. The periodic
// job logs these so pharmacy staff can re-broadcast or intervene.
type GetStaleBroadcastsQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStaleBroadcastsQuery creates a query for broadcasts older than the
// given duration.
func NewGetStaleBroadcastsQuery(olderThan time.Duration) (GetStaleBroadcastsQuery, error) {
	if olderThan <= 0 {
		return GetStaleBroadcastsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"olderThan",
			fmt.Errorf("%s is not positive", olderThan),
		)
	}
	return GetStaleBroadcastsQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleBroadcastsQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleBroadcastsQueryIsNotConstructed)
}

// OlderThan returns the minimum age of a broadcast to count as stale.
func (q GetStaleBroadcastsQuery) OlderThan() time.Duration {
	return q.olderThan
}

// GetStaleBroadcastsQueryResponse is one order stuck in Ready for Delivery.
type GetStaleBroadcastsQueryResponse struct {
	ID              kernel.UUID
	Address         string
	PendingRequests int
	LastActivityAt  time.Time
}
