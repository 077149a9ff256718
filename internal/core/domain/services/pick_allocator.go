package services

import (
	"fmt"
	"sort"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// PickAllocator is a domain service that distributes a pick quantity for one
// SKU across the outstanding order items competing for it.
//
// Allocation rules:
//   - Candidates are items pickable right now: their order is Open or Picking
//     and not ready to pack, the item belongs to the order's active shipment
//     batch, and it has remaining quantity
//   - Strict FIFO: candidates are served oldest order first, tie-broken by
//     item creation time, then item ID ascending
//   - All-or-nothing at the request level: if the requested total exceeds the
//     combined remaining quantity, nothing is allocated; partial allocation
//     across items within a satisfiable request is normal
//
// Example usage:
//
//	allocator := NewPickAllocator()
//	result, err := allocator.Allocate(orders, "SKU-RED-M", 4, "jane", "", time.Now())
//	if errors.Is(err, errs.ErrConflict) {
//	    // not enough remaining stock across all candidates
//	}
type PickAllocator struct{}

// NewPickAllocator creates a new PickAllocator instance.
func NewPickAllocator() PickAllocator {
	return PickAllocator{}
}

// ItemAllocation records how many units one allocation took from one item.
type ItemAllocation struct {
	OrderID     kernel.UUID
	OrderNumber string
	ItemID      kernel.UUID
	Qty         int
}

// AllocationResult is the outcome of a successful pick allocation.
type AllocationResult struct {
	// AffectedOrders are the orders whose items received picks, in FIFO order.
	AffectedOrders []*order.Order
	// ReadyOrders are the display numbers of orders that became ready to pack.
	ReadyOrders []string
	// Allocations record the per-item distribution of the requested quantity.
	Allocations []ItemAllocation
}

// candidate pairs an eligible item with its owning order for FIFO sorting.
type candidate struct {
	order *order.Order
	item  *order.Item
}

// Allocate distributes qty units of the SKU across the given orders, oldest
// first, and re-derives readiness on every touched order.
//
// The orders passed in are the candidate set loaded by the caller under the
// transaction's row locks; this service filters them down to pickable items,
// verifies sufficiency, then mutates the aggregates.
//
// Failure modes:
//   - quantity <= 0: validation error, nothing touched
//   - no pickable candidates for the SKU: not-found error
//   - requested total exceeds combined remaining: conflict, nothing touched
func (a PickAllocator) Allocate(
	orders []*order.Order,
	sku string,
	qty int,
	actor, notes string,
	now time.Time,
) (*AllocationResult, error) {
	if qty <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", qty, 1, 1_000_000)
	}
	if sku == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}
	if actor == "" {
		return nil, errs.NewValueIsRequiredError("actor")
	}

	candidates, err := a.collectCandidates(orders, sku)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, errs.NewObjectNotFoundError("sku",
			fmt.Sprintf("no outstanding items found for SKU %s", sku))
	}

	totalRemaining := 0
	for _, c := range candidates {
		totalRemaining += c.item.QtyRemaining()
	}
	if qty > totalRemaining {
		return nil, errs.NewConflictError("quantity",
			fmt.Sprintf("cannot pick %d units of %s, only %d remaining", qty, sku, totalRemaining))
	}

	result := &AllocationResult{}
	remaining := qty
	seenOrders := make(map[kernel.UUID]bool)

	for _, c := range candidates {
		if remaining <= 0 {
			break
		}

		take := remaining
		if itemRemaining := c.item.QtyRemaining(); take > itemRemaining {
			take = itemRemaining
		}

		if err = c.order.PickItem(c.item.ID(), take, actor, notes, now); err != nil {
			return nil, err
		}

		result.Allocations = append(result.Allocations, ItemAllocation{
			OrderID:     c.order.ID(),
			OrderNumber: c.order.Number(),
			ItemID:      c.item.ID(),
			Qty:         take,
		})
		if !seenOrders[c.order.ID()] {
			seenOrders[c.order.ID()] = true
			result.AffectedOrders = append(result.AffectedOrders, c.order)
		}

		remaining -= take
	}

	for _, o := range result.AffectedOrders {
		becameReady, readyErr := o.RefreshReadiness()
		if readyErr != nil {
			return nil, readyErr
		}
		if becameReady {
			result.ReadyOrders = append(result.ReadyOrders, o.Number())
		}
	}

	return result, nil
}

// collectCandidates filters the orders down to pickable items for the SKU and
// sorts them FIFO: order creation time ascending, then item creation time,
// then item ID so equal timestamps still yield a deterministic order.
func (a PickAllocator) collectCandidates(orders []*order.Order, sku string) ([]candidate, error) {
	var candidates []candidate

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}

		for _, item := range o.Items() {
			if item.SKU() != sku || !o.IsItemPickable(item) {
				continue
			}
			candidates = append(candidates, candidate{order: o, item: item})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ti, tj := candidates[i].order.CreatedAt(), candidates[j].order.CreatedAt()
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		ci, cj := candidates[i].item.CreatedAt(), candidates[j].item.CreatedAt()
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}
		return candidates[i].item.ID().String() < candidates[j].item.ID().String()
	})

	return candidates, nil
}
