package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler reads one order's lifecycle view from the
// database.
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler for order status queries.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle executes the order status query.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (*GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var resp GetOrderStatusQueryResponse
	var orderID uuid.UUID
	var packedBy sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			external_id,
			number,
			customer_name,
			status,
			ready_to_pack,
			total_shipments,
			current_shipment,
			packed_at,
			packed_by,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&orderID,
		&resp.ExternalID,
		&resp.Number,
		&resp.CustomerName,
		&resp.Status,
		&resp.ReadyToPack,
		&resp.TotalShipments,
		&resp.CurrentShipment,
		&resp.PackedAt,
		&packedBy,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return nil, err
	}

	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return nil, err
	}
	resp.PackedBy = packedBy.String

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			title,
			category,
			qty_ordered,
			qty_picked,
			qty_short,
			shipment_batch
		FROM order_items
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemStatusResponse
		var itemID uuid.UUID

		if err = rows.Scan(
			&itemID,
			&item.SKU,
			&item.Title,
			&item.Category,
			&item.QtyOrdered,
			&item.QtyPicked,
			&item.QtyShort,
			&item.ShipmentBatch,
		); err != nil {
			return nil, err
		}

		if item.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &resp, nil
}
