package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetPickListStatsQueryIsNotConstructed = errors.New(
	"GetPickListStatsQuery must be created via NewGetPickListStatsQuery constructor",
)

// GetPickListStatsQuery retrieves summary counters for the picking floor:
// how much work is outstanding and how many orders sit in each stage.
type GetPickListStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPickListStatsQuery creates a parameterless stats query.
func NewGetPickListStatsQuery() GetPickListStatsQuery {
	return GetPickListStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPickListStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetPickListStatsQueryIsNotConstructed)
}

// GetPickListStatsQueryResponse summarizes outstanding picking work.
type GetPickListStatsQueryResponse struct {
	UnitsToPick         int
	DistinctSKUs        int
	OrdersOpen          int
	OrdersPicking       int
	OrdersReadyToPack   int
	UnresolvedShortages int
}
