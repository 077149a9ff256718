package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetStockExceptionsQueryIsNotConstructed = errors.New(
	"GetStockExceptionsQuery must be created via NewGetStockExceptionsQuery constructor",
)

// GetStockExceptionsQuery lists recorded stock exceptions. The resolved
// filter is tri-state: nil returns everything, true only resolved, false
// only standing shortages. The time bounds, when set, restrict by report
// date.
type GetStockExceptionsQuery struct {
	resolved       *bool
	reportedAfter  *time.Time
	reportedBefore *time.Time

	guard guard.ConstructorGuard
}

// NewGetStockExceptionsQuery creates an exception listing query. All filters
// are optional; pass nil to leave one open.
func NewGetStockExceptionsQuery(resolved *bool, reportedAfter, reportedBefore *time.Time) GetStockExceptionsQuery {
	return GetStockExceptionsQuery{
		resolved:       resolved,
		reportedAfter:  reportedAfter,
		reportedBefore: reportedBefore,
		guard:          guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetStockExceptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetStockExceptionsQueryIsNotConstructed)
}

// Resolved returns the tri-state resolution filter.
func (q GetStockExceptionsQuery) Resolved() *bool {
	return q.resolved
}

// ReportedAfter returns the lower report-date bound, if any.
func (q GetStockExceptionsQuery) ReportedAfter() *time.Time {
	return q.reportedAfter
}

// ReportedBefore returns the upper report-date bound, if any.
func (q GetStockExceptionsQuery) ReportedBefore() *time.Time {
	return q.reportedBefore
}

// GetStockExceptionsQueryResponse is one recorded stock exception.
type GetStockExceptionsQueryResponse struct {
	ID                 kernel.UUID
	SKU                string
	ProductTitle       string
	Category           string
	QtyShort           int
	OrderNumbers       []string
	ReportedBy         string
	ReportedAt         time.Time
	Resolved           bool
	OrderedFromCompany bool
	NACancel           bool
	Notes              string
}
