package queries

import (
	"context"
	"time"

	"medpanda/internal/core/domain/model/courier"
	"medpanda/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingRequestsQueryHandler reads a courier's open delivery requests
// from the database.
type GetPendingRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingRequestsQueryHandler creates a handler for request inbox queries.
func NewGetPendingRequestsQueryHandler(db *gorm.DB) GetPendingRequestsQueryHandler {
	return GetPendingRequestsQueryHandler{db: db}
}

// Handle executes the query. Requests are returned oldest first so the
// longest-waiting offer is at the top of the inbox.
func (h GetPendingRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingRequestsQuery,
) ([]GetPendingRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetPendingRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			total_cents,
			item_count,
			address,
			requested_at
		FROM delivery_requests
		WHERE courier_id = ? AND status = ?
		ORDER BY requested_at
	`, query.CourierID().String(), courier.RequestPending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			orderID     uuid.UUID
			totalCents  int64
			itemCount   int
			address     string
			requestedAt time.Time
		)

		if err = rows.Scan(&id, &orderID, &totalCents, &itemCount, &address, &requestedAt); err != nil {
			return nil, err
		}

		var resp GetPendingRequestsQueryResponse

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		resp.OrderID, err = kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return nil, err
		}

		resp.Total, err = kernel.NewMoneyFromCents(totalCents)
		if err != nil {
			return nil, err
		}

		resp.ItemCount = itemCount
		resp.Address = address
		resp.RequestedAt = requestedAt
		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
