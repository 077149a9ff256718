package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// maxShipmentBatches bounds how many shipment batches one order may be split into.
	maxShipmentBatches = 99
	// maxOrderedQuantity bounds a single line's ordered quantity, used for range errors.
	maxOrderedQuantity = 1_000_000
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrNumberIsRequired is returned when attempting to create an order without a display number.
	ErrNumberIsRequired = errs.NewValueIsRequiredError("number")
	// ErrExternalIDIsRequired is returned when attempting to create an order without an external identifier.
	ErrExternalIDIsRequired = errs.NewValueIsRequiredError("externalID")
	// ErrItemNotFound is returned when a requested order item cannot be found on the aggregate.
	ErrItemNotFound = errors.New("order item not found")
)

// Order is one customer order: the aggregate root of the Inventory Ledger.
// It owns its Items exclusively and collects the PickEvents recorded against
// them; the back-reference from item to order is by parent ID only, never a
// true cycle.
//
// Order maintains these invariants:
//   - currentShipment is always within [1, totalShipments]
//   - readyToPack is true exactly when status is ReadyToPack
//   - every item obeys qtyPicked + qtyShort <= qtyOrdered
//   - status transitions follow the Status state machine
//
// The order is ready to pack iff it has at least one item and every item,
// across all shipment batches, is fully picked or shorted. Readiness is
// re-derived from item state after every mutation that can complete or
// un-complete the order.
//
// Example:
//
//	o, err := NewOrder(kernel.NewUUID(), "ext-1001", "1001", "Jane Smith", time.Now())
//	if err != nil {
//	    // handle validation error
//	}
//	if err := o.AddItem(kernel.NewUUID(), "SKU-RED-M", "Red Shirt M", "Apparel", 3, time.Now()); err != nil {
//	    // handle validation error
//	}
type Order struct {
	// id is the immutable unique identifier of the order
	id kernel.UUID
	// externalID is the immutable identifier assigned by the upstream feed
	externalID string
	// number is the human-facing display number
	number string
	// customerName is the customer the order belongs to
	customerName string
	// status is the current state in the order lifecycle
	status Status
	// readyToPack mirrors status == ReadyToPack as a fast filter
	readyToPack bool
	// totalShipments is how many shipment batches the order is split into (>= 1)
	totalShipments int
	// currentShipment is the active, pickable batch (1..totalShipments)
	currentShipment int
	// packedAt is set only when the final shipment batch packs
	packedAt *time.Time
	// packedBy is the identity of the packer, set with packedAt
	packedBy string
	// createdAt defines the order's position in FIFO allocation
	createdAt time.Time
	// items are the order's lines, owned exclusively by this aggregate
	items []*Item
	// pickEvents are audit records accumulated since the aggregate was loaded
	pickEvents []*PickEvent
	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Open status with a single shipment batch.
// Items are added afterwards via AddItem; orders are created by the ingestion
// collaborator and never deleted by this engine.
func NewOrder(id kernel.UUID, externalID, number, customerName string, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:          Open,
		totalShipments:  1,
		currentShipment: 1,
		createdAt:       createdAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setExternalID(externalID),
		o.setNumber(number),
	); err != nil {
		return nil, err
	}

	o.customerName = customerName
	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its items, shipment bookkeeping, and pack metadata. The restored
// order behaves identically to one mutated through normal domain operations.
//
// Consistency rules enforced on restore:
//   - status must be valid
//   - currentShipment must be within [1, totalShipments]
//   - readyToPack must equal (status == ReadyToPack)
func RestoreOrder(
	id kernel.UUID,
	externalID, number, customerName string,
	status Status,
	readyToPack bool,
	totalShipments, currentShipment int,
	packedAt *time.Time,
	packedBy string,
	createdAt time.Time,
	items []*Item,
) (*Order, error) {
	o, err := NewOrder(id, externalID, number, customerName, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if totalShipments < 1 {
		return nil, errs.NewValueIsOutOfRangeError("totalShipments", totalShipments, 1, maxShipmentBatches)
	}
	if currentShipment < 1 || currentShipment > totalShipments {
		return nil, errs.NewValueIsOutOfRangeError("currentShipment", currentShipment, 1, totalShipments)
	}
	if readyToPack != (status == ReadyToPack) {
		return nil, errs.NewValueIsInvalidErrorWithCause("readyToPack",
			fmt.Errorf("flag %t is inconsistent with status %s", readyToPack, status))
	}
	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.readyToPack = readyToPack
	o.totalShipments = totalShipments
	o.currentShipment = currentShipment
	o.packedAt = packedAt
	o.packedBy = packedBy
	o.items = items
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ExternalID returns the identifier assigned by the upstream feed.
func (o *Order) ExternalID() string {
	return o.externalID
}

// Number returns the human-facing display number.
func (o *Order) Number() string {
	return o.number
}

// CustomerName returns the customer the order belongs to.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// IsReadyToPack returns the fast readiness flag, true exactly when the order
// status is ReadyToPack.
func (o *Order) IsReadyToPack() bool {
	return o.readyToPack
}

// TotalShipments returns the number of shipment batches of the order.
func (o *Order) TotalShipments() int {
	return o.totalShipments
}

// CurrentShipment returns the active, pickable shipment batch.
func (o *Order) CurrentShipment() int {
	return o.currentShipment
}

// PackedAt returns the pack timestamp, nil until the order fully packs.
func (o *Order) PackedAt() *time.Time {
	return o.packedAt
}

// PackedBy returns the packer identity, empty until the order fully packs.
func (o *Order) PackedBy() string {
	return o.packedBy
}

// CreatedAt returns the order's creation time, which defines FIFO order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns the order's lines.
func (o *Order) Items() []*Item {
	return o.items
}

// PickEvents returns the audit records accumulated on this aggregate since it
// was loaded. The repository persists them on update; they are never loaded
// back into the aggregate.
func (o *Order) PickEvents() []*PickEvent {
	return o.pickEvents
}

// AddItem appends a new line to the order. Used by the ingestion side when
// orders are created; one line per (order, product) pair.
func (o *Order) AddItem(id kernel.UUID, sku, title, category string, qtyOrdered int, createdAt time.Time) error {
	item, err := NewItem(id, sku, title, category, qtyOrdered, createdAt)
	if err != nil {
		return err
	}
	o.items = append(o.items, item)
	return nil
}

// Item finds a line by its identifier.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, ErrItemNotFound
}

// ItemBySKU finds the line for the given SKU.
// There is at most one line per SKU on an order.
func (o *Order) ItemBySKU(sku string) (*Item, error) {
	for _, item := range o.items {
		if item.SKU() == sku {
			return item, nil
		}
	}
	return nil, ErrItemNotFound
}

// IsItemPickable reports whether the given line may currently receive pick
// allocations: the order must be allocatable (Open or Picking, not ready to
// pack), the item must belong to the active shipment batch, and it must have
// remaining quantity. This is the single in-memory expression of the
// eligibility rule shared with the persistence-side candidate queries.
func (o *Order) IsItemPickable(item *Item) bool {
	return o.status.IsAllocatable() &&
		!o.readyToPack &&
		item.ShipmentBatch() == o.currentShipment &&
		item.QtyRemaining() > 0
}

// PickItem allocates qty units of the given line to qtyPicked and records a
// PickEvent for the audit trail. An Open order flips to Picking on its first
// pick. The caller is responsible for choosing eligible items; quantity
// bounds are still enforced here.
func (o *Order) PickItem(itemID kernel.UUID, qty int, actor, notes string, now time.Time) error {
	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	if err = item.pick(qty); err != nil {
		return err
	}

	event, err := NewPickEvent(kernel.NewUUID(), item.ID(), qty, actor, notes, now)
	if err != nil {
		return err
	}
	o.pickEvents = append(o.pickEvents, event)

	if o.status == Open {
		newStatus, statusErr := o.status.StartPicking()
		if statusErr != nil {
			return statusErr
		}
		o.status = newStatus
	}

	return nil
}

// MarkItemShort records qty units of the SKU's line as unavailable.
// Marking short never advances the order to ready to pack by itself;
// readiness stays deferred until shortages are resolved or cancelled.
func (o *Order) MarkItemShort(sku string, qty int) error {
	item, err := o.ItemBySKU(sku)
	if err != nil {
		return err
	}
	return item.markShort(qty)
}

// ShortageRestoration reports the outcome of restoring a SKU's shortage on
// one order: how many units became pickable again, whether the order was
// reverted from ReadyToPack to Picking, and which items had to be skipped
// because their shipment batch was already packed.
type ShortageRestoration struct {
	RestoredUnits int
	RestoredItems int
	Reverted      bool
	Skipped       []SkippedItem
}

// SkippedItem identifies a line whose shortage could not be restored because
// its shipment batch has already been packed and shipped.
type SkippedItem struct {
	ItemID       kernel.UUID
	Batch        int
	CurrentBatch int
}

// RestoreShortage resets qtyShort to zero on every line matching the SKU,
// making those units pickable again.
//
// Batch safety: on a multi-shipment order, a line whose batch is behind the
// current shipment pointer has already been packed and cannot be un-shipped;
// such lines are skipped and reported. If anything was restored while the
// order was ReadyToPack, the order reverts to Picking since it can no longer
// be complete.
func (o *Order) RestoreShortage(sku string) (ShortageRestoration, error) {
	var result ShortageRestoration

	for _, item := range o.items {
		if item.SKU() != sku || item.QtyShort() == 0 {
			continue
		}

		if o.totalShipments > 1 && o.currentShipment > item.ShipmentBatch() {
			result.Skipped = append(result.Skipped, SkippedItem{
				ItemID:       item.ID(),
				Batch:        item.ShipmentBatch(),
				CurrentBatch: o.currentShipment,
			})
			continue
		}

		result.RestoredUnits += item.restoreShort()
		result.RestoredItems++
	}

	if result.RestoredItems > 0 && o.readyToPack {
		newStatus, err := o.status.RevertToPicking()
		if err != nil {
			return ShortageRestoration{}, err
		}
		o.status = newStatus
		o.readyToPack = false
		result.Reverted = true
	}

	return result, nil
}

// CheckReadyToPack evaluates the readiness predicate: the order has at least
// one item and every item, across all shipment batches, is fully picked or
// shorted.
func (o *Order) CheckReadyToPack() bool {
	if len(o.items) == 0 {
		return false
	}
	for _, item := range o.items {
		if !item.IsComplete() {
			return false
		}
	}
	return true
}

// RefreshReadiness re-derives order-level readiness from item-level state.
// If the order is complete, still allocatable, and not already ready, it
// transitions to ReadyToPack. Returns true when the transition fired.
func (o *Order) RefreshReadiness() (bool, error) {
	if o.readyToPack || !o.status.IsAllocatable() || !o.CheckReadyToPack() {
		return false, nil
	}

	newStatus, err := o.status.MarkReady()
	if err != nil {
		return false, err
	}
	o.status = newStatus
	o.readyToPack = true
	return true, nil
}

// Split partitions the order's items into shipment batches. Assignments map
// item IDs to batch numbers (>= 1); every assigned item must belong to the
// order. After assignment totalShipments becomes the highest batch across all
// items and the shipment pointer resets to batch 1.
//
// Splitting is rejected once the order is ready to pack or packed.
func (o *Order) Split(assignments map[kernel.UUID]int) error {
	if o.readyToPack || o.status == Packed {
		return errs.NewConflictError("order",
			fmt.Sprintf("cannot split order %s that is already ready to pack or packed", o.number))
	}
	if len(assignments) == 0 {
		return errs.NewValueIsRequiredError("assignments")
	}

	for itemID, batch := range assignments {
		if _, err := o.Item(itemID); err != nil {
			return errs.NewObjectNotFoundError("itemId", itemID.String())
		}
		if batch < 1 || batch > maxShipmentBatches {
			return errs.NewValueIsOutOfRangeError("batch", batch, 1, maxShipmentBatches)
		}
	}

	for itemID, batch := range assignments {
		item, _ := o.Item(itemID)
		if err := item.setShipmentBatch(batch); err != nil {
			return err
		}
	}

	maxBatch := 1
	for _, item := range o.items {
		if item.ShipmentBatch() > maxBatch {
			maxBatch = item.ShipmentBatch()
		}
	}

	o.totalShipments = maxBatch
	o.currentShipment = 1
	return nil
}

// Unsplit reverts a split: every item returns to batch 1 and the order
// becomes a single shipment again. Rejected once the order is ready to pack
// or packed.
func (o *Order) Unsplit() error {
	if o.readyToPack || o.status == Packed {
		return errs.NewConflictError("order",
			fmt.Sprintf("cannot unsplit order %s that is already ready to pack or packed", o.number))
	}

	for _, item := range o.items {
		if err := item.setShipmentBatch(1); err != nil {
			return err
		}
	}
	o.totalShipments = 1
	o.currentShipment = 1
	return nil
}

// AdvanceAfterPack records that the active shipment batch has been packed.
// The order must be ReadyToPack.
//
// On the final batch the order transitions to Packed and the pack timestamp
// and packer are stamped; fullyPacked is returned true. Otherwise the pointer
// advances to the next batch and the order goes back to Picking, making the
// next batch's items pickable again.
func (o *Order) AdvanceAfterPack(actor string, now time.Time) (fullyPacked bool, err error) {
	if o.status != ReadyToPack {
		return false, errs.NewConflictError("order",
			fmt.Sprintf("order %s must be ready to pack, is %s", o.number, o.status))
	}

	if o.currentShipment >= o.totalShipments {
		newStatus, packErr := o.status.Pack()
		if packErr != nil {
			return false, packErr
		}
		o.status = newStatus
		o.readyToPack = false
		o.packedAt = &now
		o.packedBy = actor
		return true, nil
	}

	newStatus, revertErr := o.status.RevertToPicking()
	if revertErr != nil {
		return false, revertErr
	}
	o.currentShipment++
	o.status = newStatus
	o.readyToPack = false
	return false, nil
}

// RevertToOpen is the destructive correction flow: a ReadyToPack or Packed
// order returns to Open, every item's picked quantity resets to zero, and the
// pack metadata is cleared. Shortages are deliberately kept.
func (o *Order) RevertToOpen() error {
	if o.status != ReadyToPack && o.status != Packed {
		return errs.NewConflictError("order",
			fmt.Sprintf("order %s must be ready to pack or packed to revert, is %s", o.number, o.status))
	}

	o.status = Open
	o.readyToPack = false
	o.packedAt = nil
	o.packedBy = ""
	for _, item := range o.items {
		item.resetPicked()
	}
	return nil
}

// ForceState is the administrative override: it sets the order directly to
// Open, ReadyToPack, or Packed, bypassing the readiness predicate, and
// adjusts the readiness flag and pack metadata consistently with the target.
func (o *Order) ForceState(target Status, actor string, now time.Time) error {
	switch target {
	case Open:
		o.status = Open
		o.readyToPack = false
		o.packedAt = nil
		o.packedBy = ""
	case ReadyToPack:
		o.status = ReadyToPack
		o.readyToPack = true
		o.packedAt = nil
		o.packedBy = ""
	case Packed:
		o.status = Packed
		o.readyToPack = false
		if o.packedAt == nil {
			o.packedAt = &now
		}
		if o.packedBy == "" {
			o.packedBy = actor
		}
	default:
		return errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("%s is not a valid target state, must be open, ready_to_pack, or packed", target))
	}
	return nil
}

// Cancel manually cancels the order. Allowed from any non-Packed state;
// cancelled orders never become allocation candidates again.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.readyToPack = false
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setExternalID(externalID string) error {
	if externalID == "" {
		return ErrExternalIDIsRequired
	}
	o.externalID = externalID
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return ErrNumberIsRequired
	}
	o.number = number
	return nil
}
