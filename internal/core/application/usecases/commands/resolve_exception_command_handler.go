package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// SkippedRestoration identifies an item whose shortage could not be restored
// because its shipment batch was already packed when the exception resolved.
type SkippedRestoration struct {
	OrderNumber  string
	Batch        int
	CurrentBatch int
}

// ResolveResult reports the outcome of resolving a stock exception.
//
// The exception itself is always marked resolved; restoration of individual
// items is best-effort. AllItemsInPackedBatches flags the soft failure where
// restoration was attempted but every matching item sat in an already-packed
// batch, so nothing changed on the ledger.
type ResolveResult struct {
	RestoredItems           int
	RestoredUnits           int
	RevertedOrders          int
	Skipped                 []SkippedRestoration
	AllItemsInPackedBatches bool
}

// ResolveExceptionCommandHandler restores the shortage an exception recorded
// and marks the exception resolved.
//
// For every order item matching the exception's SKU and order numbers with a
// standing shortage, the shortage resets to zero, making the units pickable
// again. Items in already-packed shipment batches are skipped: a packed batch
// cannot be un-shipped. Orders that were ready to pack revert to picking when
// anything was restored on them, since they can no longer be complete.
//
// Resolving twice is safe: the second call finds no standing shortages and
// reports zero restorations without error.
type ResolveExceptionCommandHandler struct {
	uowFactory UoWFactory
}

// NewResolveExceptionCommandHandler creates a handler for exception resolution.
// Requires a UoWFactory coordinating order and exception repositories.
func NewResolveExceptionCommandHandler(uowFactory UoWFactory) ResolveExceptionCommandHandler {
	return ResolveExceptionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolve command within one transaction.
func (h ResolveExceptionCommandHandler) Handle(
	ctx context.Context,
	cmd ResolveExceptionCommand,
) (*ResolveResult, error) {
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

	exceptionRepo := uow.StockExceptionRepository()
	orderRepo := uow.OrderRepository()

	exception, err := exceptionRepo.Get(ctx, cmd.ExceptionID())
	if err != nil {
		return nil, err
	}

	orders, err := orderRepo.GetByNumbersForUpdate(ctx, exception.OrderNumbers(),
		[]order.Status{order.Open, order.Picking, order.ReadyToPack})
	if err != nil {
		return nil, err
	}

	result := &ResolveResult{}
	for _, o := range orders {
		restoration, restoreErr := o.RestoreShortage(exception.SKU())
		if restoreErr != nil {
			return nil, restoreErr
		}

		for _, skipped := range restoration.Skipped {
			result.Skipped = append(result.Skipped, SkippedRestoration{
				OrderNumber:  o.Number(),
				Batch:        skipped.Batch,
				CurrentBatch: skipped.CurrentBatch,
			})
		}

		if restoration.RestoredItems == 0 {
			continue
		}

		result.RestoredItems += restoration.RestoredItems
		result.RestoredUnits += restoration.RestoredUnits
		if restoration.Reverted {
			result.RevertedOrders++
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	// The resolution flag is not conditional on restorations succeeding.
	exception.Resolve(cmd.Actor(), result.RestoredItems)
	if err = exceptionRepo.Update(ctx, exception); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	result.AllItemsInPackedBatches = result.RestoredItems == 0 && len(result.Skipped) > 0
	return result, nil
}
