package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersForSKUQueryHandler lists the orders competing for one SKU in FIFO
// order, the same order the allocator serves them in.
type GetOrdersForSKUQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersForSKUQueryHandler creates a handler for SKU drill-down queries.
func NewGetOrdersForSKUQueryHandler(db *gorm.DB) GetOrdersForSKUQueryHandler {
	return GetOrdersForSKUQueryHandler{db: db}
}

// Handle executes the drill-down query.
func (h GetOrdersForSKUQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersForSKUQuery,
) ([]GetOrdersForSKUQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lines := make([]GetOrdersForSKUQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			i.id,
			o.number,
			o.customer_name,
			o.status,
			i.qty_ordered,
			i.qty_picked,
			i.qty_short,
			o.created_at
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE i.sku = ?
		  AND o.status IN (?, ?)
		  AND o.ready_to_pack = FALSE
		  AND i.shipment_batch = o.current_shipment
		  AND i.qty_ordered - i.qty_picked - i.qty_short > 0
		ORDER BY o.created_at, i.created_at
	`, query.SKU(), order.Open.String(), order.Picking.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetOrdersForSKUQueryResponse
		var orderID, itemID uuid.UUID

		if err = rows.Scan(
			&orderID,
			&itemID,
			&line.OrderNumber,
			&line.CustomerName,
			&line.Status,
			&line.QtyOrdered,
			&line.QtyPicked,
			&line.QtyShort,
			&line.CreatedAt,
		); err != nil {
			return nil, err
		}

		if line.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if line.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		line.QtyRemaining = line.QtyOrdered - line.QtyPicked - line.QtyShort
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
