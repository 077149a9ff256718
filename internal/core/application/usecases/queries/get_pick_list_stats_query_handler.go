package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPickListStatsQueryHandler computes floor-level counters in one round trip.
type GetPickListStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetPickListStatsQueryHandler creates a handler for pick list stats.
func NewGetPickListStatsQueryHandler(db *gorm.DB) GetPickListStatsQueryHandler {
	return GetPickListStatsQueryHandler{db: db}
}

// Handle executes the stats query.
func (h GetPickListStatsQueryHandler) Handle(
	ctx context.Context,
	query GetPickListStatsQuery,
) (*GetPickListStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var stats GetPickListStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE((
				SELECT SUM(i.qty_ordered - i.qty_picked - i.qty_short)
				FROM order_items i
				JOIN orders o ON o.id = i.order_id
				WHERE o.status IN (?, ?)
				  AND o.ready_to_pack = FALSE
				  AND i.shipment_batch = o.current_shipment
				  AND i.qty_ordered - i.qty_picked - i.qty_short > 0
			), 0) AS units_to_pick,
			COALESCE((
				SELECT COUNT(DISTINCT i.sku)
				FROM order_items i
				JOIN orders o ON o.id = i.order_id
				WHERE o.status IN (?, ?)
				  AND o.ready_to_pack = FALSE
				  AND i.shipment_batch = o.current_shipment
				  AND i.qty_ordered - i.qty_picked - i.qty_short > 0
			), 0) AS distinct_skus,
			(SELECT COUNT(*) FROM orders WHERE status = ?) AS orders_open,
			(SELECT COUNT(*) FROM orders WHERE status = ?) AS orders_picking,
			(SELECT COUNT(*) FROM orders WHERE status = ?) AS orders_ready_to_pack,
			(SELECT COUNT(*) FROM stock_exceptions WHERE resolved = FALSE) AS unresolved_shortages
	`,
		order.Open.String(), order.Picking.String(),
		order.Open.String(), order.Picking.String(),
		order.Open.String(), order.Picking.String(), order.ReadyToPack.String(),
	).Row()

	if err := row.Scan(
		&stats.UnitsToPick,
		&stats.DistinctSKUs,
		&stats.OrdersOpen,
		&stats.OrdersPicking,
		&stats.OrdersReadyToPack,
		&stats.UnresolvedShortages,
	); err != nil {
		return nil, err
	}

	return &stats, nil
}
