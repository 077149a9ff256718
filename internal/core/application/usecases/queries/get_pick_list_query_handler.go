package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPickListQueryHandler builds the warehouse pick list from the database.
//
// A line is included only while demand remains: orders in open or picking
// status that are not ready to pack, items in the order's active shipment
// batch with remaining quantity. This mirrors the eligibility rule the pick
// allocator applies in memory.
type GetPickListQueryHandler struct {
	db *gorm.DB
}

// NewGetPickListQueryHandler creates a handler for pick list queries.
// Requires a GORM database connection for query execution.
func NewGetPickListQueryHandler(db *gorm.DB) GetPickListQueryHandler {
	return GetPickListQueryHandler{db: db}
}

// Handle executes the pick list query. Lines are sorted by category and
// title so pickers walk the warehouse in a stable order.
func (h GetPickListQueryHandler) Handle(
	ctx context.Context,
	query GetPickListQuery,
) ([]GetPickListQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lines := make([]GetPickListQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.sku,
			MIN(i.title)    AS title,
			MIN(i.category) AS category,
			SUM(i.qty_ordered - i.qty_picked - i.qty_short) AS qty_to_pick,
			COUNT(DISTINCT o.id) AS order_count,
			MIN(o.created_at)    AS oldest_order
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.status IN (?, ?)
		  AND o.ready_to_pack = FALSE
		  AND i.shipment_batch = o.current_shipment
		  AND i.qty_ordered - i.qty_picked - i.qty_short > 0
		GROUP BY i.sku
		ORDER BY category, title, i.sku
	`, order.Open.String(), order.Picking.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetPickListQueryResponse
		if err = rows.Scan(
			&line.SKU,
			&line.Title,
			&line.Category,
			&line.QtyToPick,
			&line.OrderCount,
			&line.OldestOrder,
		); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
