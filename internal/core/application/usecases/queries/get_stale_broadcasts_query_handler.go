package queries

import (
	"context"
	"time"

	"medpanda/internal/core/domain/model/courier"
	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStaleBroadcastsQueryHandler finds broadcast orders no courier has
// accepted, together with how many offers are still open for each.
type GetStaleBroadcastsQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleBroadcastsQueryHandler creates a handler for stale broadcast queries.
func NewGetStaleBroadcastsQueryHandler(db *gorm.DB) GetStaleBroadcastsQueryHandler {
	return GetStaleBroadcastsQueryHandler{db: db}
}

// Handle executes the query. An order counts as stale when it sits in
// Ready for Delivery and its row has not changed for the query's duration.
func (h GetStaleBroadcastsQueryHandler) Handle(
	ctx context.Context,
	query GetStaleBroadcastsQuery,
) ([]GetStaleBroadcastsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-query.OlderThan())
	stale := make([]GetStaleBroadcastsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.address,
			o.updated_at,
			COUNT(r.id) FILTER (WHERE r.status = ?) AS pending_requests
		FROM orders o
		LEFT JOIN delivery_requests r ON r.order_id = o.id
		WHERE o.status = ? AND o.updated_at < ?
		GROUP BY o.id, o.address, o.updated_at
		ORDER BY o.updated_at
	`, courier.RequestPending.String(), order.ReadyForDelivery.String(), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id              uuid.UUID
			address         string
			updatedAt       time.Time
			pendingRequests int
		)

		if err = rows.Scan(&id, &address, &updatedAt, &pendingRequests); err != nil {
			return nil, err
		}

		var resp GetStaleBroadcastsQueryResponse

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		resp.Address = address
		resp.LastActivityAt = updatedAt
		resp.PendingRequests = pendingRequests
		stale = append(stale, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stale, nil
}
