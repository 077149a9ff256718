package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery retrieves the full lifecycle view of one order: its
// status, shipment batch position, pack metadata, and each item's quantity
// ledger.
type GetOrderStatusQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a query for one order's lifecycle state.
func NewGetOrderStatusQuery(orderID kernel.UUID) (GetOrderStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusQuery{}, errs.NewValueIsRequiredError("orderID")
	}
	return GetOrderStatusQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the order being inspected.
func (q GetOrderStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemStatusResponse is one item's quantity ledger within the order view.
type OrderItemStatusResponse struct {
	ItemID        kernel.UUID
	SKU           string
	Title         string
	Category      string
	QtyOrdered    int
	QtyPicked     int
	QtyShort      int
	ShipmentBatch int
}

// GetOrderStatusQueryResponse is the lifecycle view of one order.
type GetOrderStatusQueryResponse struct {
	OrderID         kernel.UUID
	ExternalID      string
	Number          string
	CustomerName    string
	Status          string
	ReadyToPack     bool
	TotalShipments  int
	CurrentShipment int
	PackedAt        *time.Time
	PackedBy        string
	CreatedAt       time.Time
	Items           []OrderItemStatusResponse
}
