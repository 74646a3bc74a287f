package queries

import (
	"context"
	"time"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a customer's order history from the
// database, one row per order with totals aggregated over its items.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for order list queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.address,
			o.courier_id,
			o.created_at,
			COALESCE(SUM(i.unit_price_cents * i.quantity), 0) AS total_cents,
			COUNT(i.medicine_id) AS item_count
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.customer_id = ?
		GROUP BY o.id, o.status, o.address, o.courier_id, o.created_at
		ORDER BY o.created_at DESC
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			status     string
			address    string
			courierID  *uuid.UUID
			createdAt  time.Time
			totalCents int64
			itemCount  int
		)

		if err = rows.Scan(&id, &status, &address, &courierID, &createdAt, &totalCents, &itemCount); err != nil {
			return nil, err
		}

		var resp GetCustomerOrdersQueryResponse

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		resp.Status, err = order.StatusFromString(status)
		if err != nil {
			return nil, err
		}

		resp.Total, err = kernel.NewMoneyFromCents(totalCents)
		if err != nil {
			return nil, err
		}

		if courierID != nil {
			assignee, idErr := kernel.UUIDFromBytes(courierID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.CourierID = &assignee
		}

		resp.Address = address
		resp.CreatedAt = createdAt
		resp.ItemCount = itemCount
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
