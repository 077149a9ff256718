package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrPickEventIsNotConstructed is returned when a PickEvent was not created
// through NewPickEvent.
var ErrPickEventIsNotConstructed = errors.New("PickEvent must be created via NewPickEvent constructor")

// PickEvent is an immutable audit record of one allocation taken from one
// order item. Events are append-only: the engine never mutates or deletes
// them, and retention pruning is an external concern.
type PickEvent struct {
	id         kernel.UUID
	itemID     kernel.UUID
	qty        int
	actor      string
	notes      string
	occurredAt time.Time
	guard      guard.ConstructorGuard
}

// NewPickEvent records that actor took qty units from the given item.
// Quantity must be positive and the actor identity is required.
func NewPickEvent(id, itemID kernel.UUID, qty int, actor, notes string, occurredAt time.Time) (*PickEvent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := itemID.Validate(); err != nil {
		return nil, err
	}
	if qty <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("qty", qty, 1, maxOrderedQuantity)
	}
	if actor == "" {
		return nil, errs.NewValueIsRequiredError("actor")
	}

	return &PickEvent{
		id:         id,
		itemID:     itemID,
		qty:        qty,
		actor:      actor,
		notes:      notes,
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the PickEvent was properly constructed.
func (e *PickEvent) Validate() error {
	if e == nil {
		return ErrPickEventIsNotConstructed
	}
	return e.guard.Validate(ErrPickEventIsNotConstructed)
}

// ID returns the event's unique identifier.
func (e *PickEvent) ID() kernel.UUID {
	return e.id
}

// ItemID returns the identifier of the order item the pick was taken from.
func (e *PickEvent) ItemID() kernel.UUID {
	return e.itemID
}

// Qty returns the quantity taken from the item by this pick.
func (e *PickEvent) Qty() int {
	return e.qty
}

// Actor returns the identity of the user who performed the pick.
func (e *PickEvent) Actor() string {
	return e.actor
}

// Notes returns the free-text notes attached to the pick, if any.
func (e *PickEvent) Notes() string {
	return e.notes
}

// OccurredAt returns the time the pick was recorded.
func (e *PickEvent) OccurredAt() time.Time {
	return e.occurredAt
}
