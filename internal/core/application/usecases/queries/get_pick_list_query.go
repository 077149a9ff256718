// Package queries contains read-only operations against the inventory
// ledger. Implements the Query side of the CQRS architecture: handlers read
// the database directly with raw SQL and return flat response structs, never
// domain aggregates.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var ErrGetPickListQueryIsNotConstructed = errors.New(
	"GetPickListQuery must be created via NewGetPickListQuery constructor",
)

// GetPickListQuery retrieves the aggregated pick list: for every SKU with
// outstanding demand, the total quantity still to pick across all allocatable
// orders, counting only items in each order's active shipment batch.
//
// Example:
//
//	query := NewGetPickListQuery()
//	handler := NewGetPickListQueryHandler(db)
//	lines, err := handler.Handle(ctx, query)
type GetPickListQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPickListQuery creates a parameterless pick list query.
func NewGetPickListQuery() GetPickListQuery {
	return GetPickListQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPickListQuery) Validate() error {
	return q.guard.Validate(ErrGetPickListQueryIsNotConstructed)
}

// GetPickListQueryResponse is one pick list line: a SKU and the demand for it.
type GetPickListQueryResponse struct {
	SKU         string
	Title       string
	Category    string
	QtyToPick   int
	OrderCount  int
	OldestOrder time.Time
}
