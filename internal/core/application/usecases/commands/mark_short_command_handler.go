package commands

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stockexception"
	"fulfillment/internal/pkg/errs"
)

// ErrNoApplicableAllocations is returned when every allocation in a
// mark-short request had to be skipped, so no shortage was recorded.
var ErrNoApplicableAllocations = errors.New("no items were marked as not in stock")

// Reasons an individual shortage allocation was skipped.
const (
	SkipReasonNonPositiveQty   = "quantity is not positive"
	SkipReasonOrderNotFound    = "order not found"
	SkipReasonItemNotFound     = "order has no item for this SKU"
	SkipReasonExceedsRemaining = "quantity exceeds remaining"
)

// SkippedAllocation reports one allocation that could not be applied and why.
type SkippedAllocation struct {
	OrderID  kernel.UUID
	QtyShort int
	Reason   string
}

// MarkShortResult reports a recorded shortage: the created exception, the
// total applied quantity, the affected orders, and any skipped allocations.
// Skips make the result a partial outcome, not an error.
type MarkShortResult struct {
	ExceptionID      kernel.UUID
	QtyShort         int
	OrderNumbers     []string
	AffectedOrderIDs []kernel.UUID
	Skipped          []SkippedAllocation
}

// MarkShortCommandHandler records stock shortages against order items and
// creates exactly one StockException aggregating what was applied.
//
// Individual allocations are skipped, not failed, when the order or item is
// missing, the quantity is non-positive, or it exceeds the item's remaining
// quantity; every skip is reported in the result. If nothing at all could be
// applied the handler fails with ErrNoApplicableAllocations.
//
// Marking short never advances an order to ready to pack: readiness stays
// deferred until the shortage is resolved or cancelled.
type MarkShortCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkShortCommandHandler creates a handler for shortage reporting.
// Requires a UoWFactory coordinating order and exception repositories.
func NewMarkShortCommandHandler(uowFactory UoWFactory) MarkShortCommandHandler {
	return MarkShortCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-short command within one transaction.
func (h MarkShortCommandHandler) Handle(ctx context.Context, cmd MarkShortCommand) (*MarkShortResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	result := &MarkShortResult{}

	var (
		touchedOrders []*order.Order
		title         string
		category      string
		totalShort    int
		touched       = make(map[kernel.UUID]bool)
		// Repeated allocations for one order must all land on the same
		// aggregate instance: the repository rebuilds a fresh one per load,
		// and only the first instance reaches Update.
		loaded = make(map[kernel.UUID]*order.Order)
	)

	for _, allocation := range cmd.Allocations() {
		if allocation.QtyShort <= 0 {
			result.Skipped = append(result.Skipped, SkippedAllocation{
				OrderID: allocation.OrderID, QtyShort: allocation.QtyShort, Reason: SkipReasonNonPositiveQty,
			})
			continue
		}

		o, known := loaded[allocation.OrderID]
		if !known {
			var err error
			o, err = orderRepo.GetForUpdate(ctx, allocation.OrderID)
			if err != nil {
				if errors.Is(err, errs.ErrObjectNotFound) {
					result.Skipped = append(result.Skipped, SkippedAllocation{
						OrderID: allocation.OrderID, QtyShort: allocation.QtyShort, Reason: SkipReasonOrderNotFound,
					})
					continue
				}
				return nil, err
			}
			loaded[allocation.OrderID] = o
		}

		item, err := o.ItemBySKU(cmd.SKU())
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedAllocation{
				OrderID: allocation.OrderID, QtyShort: allocation.QtyShort, Reason: SkipReasonItemNotFound,
			})
			continue
		}

		if allocation.QtyShort > item.QtyRemaining() {
			result.Skipped = append(result.Skipped, SkippedAllocation{
				OrderID: allocation.OrderID, QtyShort: allocation.QtyShort, Reason: SkipReasonExceedsRemaining,
			})
			continue
		}

		if err = o.MarkItemShort(cmd.SKU(), allocation.QtyShort); err != nil {
			return nil, err
		}

		if title == "" {
			title = item.Title()
			category = item.Category()
		}
		totalShort += allocation.QtyShort

		if !touched[o.ID()] {
			touched[o.ID()] = true
			touchedOrders = append(touchedOrders, o)
			result.OrderNumbers = append(result.OrderNumbers, o.Number())
			result.AffectedOrderIDs = append(result.AffectedOrderIDs, o.ID())
		}
	}

	if totalShort == 0 {
		return nil, fmt.Errorf("%w: sku %s", ErrNoApplicableAllocations, cmd.SKU())
	}

	sort.Strings(result.OrderNumbers)

	for _, o := range touchedOrders {
		if err := orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	exception, err := stockexception.NewStockException(
		kernel.NewUUID(),
		cmd.SKU(),
		title,
		category,
		totalShort,
		result.OrderNumbers,
		cmd.Actor(),
		cmd.Notes(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.StockExceptionRepository().Add(ctx, exception); err != nil {
		return nil, err
	}
	result.ExceptionID = exception.ID()
	result.QtyShort = totalShort

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}
