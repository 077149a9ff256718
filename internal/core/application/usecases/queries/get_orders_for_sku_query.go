package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrdersForSKUQueryIsNotConstructed = errors.New(
	"GetOrdersForSKUQuery must be created via NewGetOrdersForSKUQuery constructor",
)

// GetOrdersForSKUQuery drills into one pick list line: the orders currently
// waiting on the SKU, oldest first, with their remaining quantities. This is
// the view a picker uses to decide how to distribute what they carried back.
type GetOrdersForSKUQuery struct {
	sku string

	guard guard.ConstructorGuard
}

// NewGetOrdersForSKUQuery creates a query for the orders demanding a SKU.
func NewGetOrdersForSKUQuery(sku string) (GetOrdersForSKUQuery, error) {
	if sku == "" {
		return GetOrdersForSKUQuery{}, errs.NewValueIsRequiredError("sku")
	}
	return GetOrdersForSKUQuery{sku: sku, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersForSKUQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersForSKUQueryIsNotConstructed)
}

// SKU returns the stock-keeping unit being drilled into.
func (q GetOrdersForSKUQuery) SKU() string {
	return q.sku
}

// GetOrdersForSKUQueryResponse is one order's demand line for the SKU.
type GetOrdersForSKUQueryResponse struct {
	OrderID      kernel.UUID
	ItemID       kernel.UUID
	OrderNumber  string
	CustomerName string
	Status       string
	QtyOrdered   int
	QtyPicked    int
	QtyShort     int
	QtyRemaining int
	CreatedAt    time.Time
}
