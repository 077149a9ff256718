package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetShortageSummaryQueryIsNotConstructed = errors.New(
	"GetShortageSummaryQuery must be created via NewGetShortageSummaryQuery constructor",
)

// GetShortageSummaryQuery aggregates the standing shortages by SKU: one line
// per out-of-stock SKU, combining every unresolved exception regardless of
// when it was reported. This is the purchasing view and the source of the
// daily shortage digest.
type GetShortageSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShortageSummaryQuery creates a parameterless shortage summary query.
func NewGetShortageSummaryQuery() GetShortageSummaryQuery {
	return GetShortageSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetShortageSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetShortageSummaryQueryIsNotConstructed)
}

// GetShortageSummaryQueryResponse is one SKU's combined standing shortage.
type GetShortageSummaryQueryResponse struct {
	SKU            string
	ProductTitle   string
	Category       string
	TotalQtyShort  int
	OrderNumbers   []string
	ExceptionCount int
}
