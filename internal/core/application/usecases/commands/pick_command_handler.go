package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
)

// PickResult reports a successful FIFO pick allocation.
type PickResult struct {
	// AffectedOrderIDs identify every order that received part of the pick, in FIFO order.
	AffectedOrderIDs []kernel.UUID
	// ReadyOrders are the display numbers of orders that became ready to pack.
	ReadyOrders []string
	// Allocations record how the requested quantity was distributed per item.
	Allocations []services.ItemAllocation
}

// PickCommandHandler orchestrates the pick allocation workflow: it loads the
// candidate orders for the SKU under row locks, lets the PickAllocator
// distribute the quantity oldest-order-first, and persists every touched
// order plus its audit events within one transaction.
//
// Failure leaves the ledger untouched: insufficiency is detected before any
// mutation and the transaction rolls back on any error.
//
// Example:
//
//	handler := NewPickCommandHandler(uowFactory)
//	cmd, _ := NewPickCommand("SKU-RED-M", 4, "jane", "")
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no outstanding items for this SKU
//	case errors.Is(err, errs.ErrConflict):
//	    // not enough remaining stock
//	}
type PickCommandHandler struct {
	uowFactory OrderUoWFactory
	allocator  services.PickAllocator
}

// NewPickCommandHandler creates a handler for pick operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewPickCommandHandler(uowFactory OrderUoWFactory) PickCommandHandler {
	return PickCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewPickAllocator(),
	}
}

// Handle processes the pick command. The candidate set is loaded inside the
// transaction with its item rows locked, so a concurrent pick for the same
// SKU cannot observe a stale remaining quantity and jointly over-allocate.
func (h PickCommandHandler) Handle(ctx context.Context, cmd PickCommand) (*PickResult, error) {
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

	orders, err := orderRepo.GetAllocatableBySKU(ctx, cmd.SKU())
	if err != nil {
		return nil, err
	}

	allocation, err := h.allocator.Allocate(
		orders, cmd.SKU(), cmd.Quantity(), cmd.Actor(), cmd.Notes(), time.Now())
	if err != nil {
		return nil, err
	}

	result := &PickResult{
		ReadyOrders: allocation.ReadyOrders,
		Allocations: allocation.Allocations,
	}
	for _, o := range allocation.AffectedOrders {
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
		result.AffectedOrderIDs = append(result.AffectedOrderIDs, o.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}
