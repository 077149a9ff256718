package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")
	// ErrSKUIsRequired is returned when attempting to create an item without a SKU.
	ErrSKUIsRequired = errs.NewValueIsRequiredError("sku")
)

// Item is one SKU line within an order. It owns the quantity bookkeeping the
// whole engine revolves around: at all times
//
//	0 <= qtyPicked, 0 <= qtyShort, qtyPicked + qtyShort <= qtyOrdered
//
// so no unit is ever double-counted as picked, shorted, and remaining at once.
// Title and category are denormalized copies captured at creation so the line
// displays stably even if the catalog later changes.
//
// Items belong exclusively to their Order aggregate; quantities are mutated
// only through the aggregate's methods.
type Item struct {
	// id uniquely identifies the item
	id kernel.UUID
	// sku is the stock-keeping unit this line refers to
	sku string
	// title is the product title snapshot taken at creation
	title string
	// category is the product category snapshot taken at creation
	category string
	// qtyOrdered is the quantity the customer ordered (>= 1)
	qtyOrdered int
	// qtyPicked is the quantity physically picked so far (>= 0)
	qtyPicked int
	// qtyShort is the quantity recorded as unavailable (>= 0)
	qtyShort int
	// shipmentBatch is the shipment partition this item belongs to (>= 1)
	shipmentBatch int
	// createdAt orders items deterministically within FIFO allocation
	createdAt time.Time
	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewItem creates a new order line for the given SKU.
// Quantity ordered must be at least 1; the item starts with nothing picked or
// shorted, assigned to shipment batch 1.
func NewItem(id kernel.UUID, sku, title, category string, qtyOrdered int, createdAt time.Time) (*Item, error) {
	item := &Item{
		shipmentBatch: 1,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setSKU(sku),
		item.setQtyOrdered(qtyOrdered),
	); err != nil {
		return nil, err
	}

	item.title = title
	item.category = category
	return item, nil
}

// RestoreItem reconstructs an Item from persistent storage, including its
// current quantity bookkeeping and shipment batch assignment.
func RestoreItem(
	id kernel.UUID,
	sku, title, category string,
	qtyOrdered, qtyPicked, qtyShort, shipmentBatch int,
	createdAt time.Time,
) (*Item, error) {
	item, err := NewItem(id, sku, title, category, qtyOrdered, createdAt)
	if err != nil {
		return nil, err
	}

	if qtyPicked < 0 || qtyShort < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantities",
			fmt.Errorf("picked %d and short %d must not be negative", qtyPicked, qtyShort))
	}
	if qtyPicked+qtyShort > qtyOrdered {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantities",
			fmt.Errorf("picked %d + short %d exceeds ordered %d", qtyPicked, qtyShort, qtyOrdered))
	}
	if shipmentBatch < 1 {
		return nil, errs.NewValueIsOutOfRangeError("shipmentBatch", shipmentBatch, 1, maxShipmentBatches)
	}

	item.qtyPicked = qtyPicked
	item.qtyShort = qtyShort
	item.shipmentBatch = shipmentBatch
	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// SKU returns the stock-keeping unit of the item.
func (i *Item) SKU() string {
	return i.sku
}

// Title returns the product title snapshot.
func (i *Item) Title() string {
	return i.title
}

// Category returns the product category snapshot.
func (i *Item) Category() string {
	return i.category
}

// QtyOrdered returns the ordered quantity.
func (i *Item) QtyOrdered() int {
	return i.qtyOrdered
}

// QtyPicked returns the quantity picked so far.
func (i *Item) QtyPicked() int {
	return i.qtyPicked
}

// QtyShort returns the quantity recorded as unavailable.
func (i *Item) QtyShort() int {
	return i.qtyShort
}

// ShipmentBatch returns the shipment batch this item is assigned to.
func (i *Item) ShipmentBatch() int {
	return i.shipmentBatch
}

// CreatedAt returns the item's creation time.
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// QtyRemaining returns the quantity still eligible for picking:
// ordered minus picked minus short, floored at zero.
func (i *Item) QtyRemaining() int {
	remaining := i.qtyOrdered - i.qtyPicked - i.qtyShort
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsComplete reports whether the item is fully accounted for,
// picked or shorted.
func (i *Item) IsComplete() bool {
	return i.qtyPicked+i.qtyShort >= i.qtyOrdered
}

// pick allocates qty units to qtyPicked. The caller must not exceed
// QtyRemaining; exceeding it is rejected to preserve the no-over-allocation
// invariant.
func (i *Item) pick(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", qty, 1, i.QtyRemaining())
	}
	if qty > i.QtyRemaining() {
		return errs.NewConflictError("quantity",
			fmt.Sprintf("cannot pick %d units of %s, only %d remaining", qty, i.sku, i.QtyRemaining()))
	}

	i.qtyPicked += qty
	return nil
}

// markShort records qty units as unavailable. The same remaining-quantity
// bound applies as for pick.
func (i *Item) markShort(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", qty, 1, i.QtyRemaining())
	}
	if qty > i.QtyRemaining() {
		return errs.NewConflictError("quantity",
			fmt.Sprintf("cannot mark %d units of %s short, only %d remaining", qty, i.sku, i.QtyRemaining()))
	}

	i.qtyShort += qty
	return nil
}

// restoreShort resets the shortage to zero, making the units pickable again.
// Returns the number of units restored.
func (i *Item) restoreShort() int {
	restored := i.qtyShort
	i.qtyShort = 0
	return restored
}

// resetPicked clears the picked quantity. Used only by the manual revert
// correction flow; shortages are deliberately kept.
func (i *Item) resetPicked() {
	i.qtyPicked = 0
}

// setShipmentBatch assigns the item to a shipment batch.
func (i *Item) setShipmentBatch(batch int) error {
	if batch < 1 || batch > maxShipmentBatches {
		return errs.NewValueIsOutOfRangeError("batch", batch, 1, maxShipmentBatches)
	}
	i.shipmentBatch = batch
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}
	i.sku = sku
	return nil
}

func (i *Item) setQtyOrdered(qty int) error {
	if qty < 1 {
		return errs.NewValueIsOutOfRangeError("qtyOrdered", qty, 1, maxOrderedQuantity)
	}
	i.qtyOrdered = qty
	return nil
}
