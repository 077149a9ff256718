package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Open ──> Picking ──> ReadyToPack ──> Packed
//	              ^           │
//	              └───────────┘
//	        (shortage restored, or next shipment batch)
//
//	ReadyToPack/Packed ──> Open   (manual revert)
//	any non-Packed     ──> Cancelled
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status when an order is first ingested.
	// No units have been picked or shorted yet.
	Open

	// Picking indicates at least one pick has been allocated to the order,
	// or a later shipment batch became active after the previous one packed.
	Picking

	// ReadyToPack indicates every item across all shipment batches is fully
	// accounted for: picked or shorted.
	ReadyToPack

	// Packed indicates the final shipment batch has been packed.
	Packed

	// Cancelled indicates the order was manually cancelled.
	// Cancelled orders are never candidates for allocation.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		Open:        "open",
		Picking:     "picking",
		ReadyToPack: "ready_to_pack",
		Packed:      "packed",
		Cancelled:   "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:        "open",
		Picking:     "picking",
		ReadyToPack: "ready_to_pack",
		Packed:      "packed",
		Cancelled:   "cancelled",
	}
}

// StatusFromString parses a status from its persisted or transport string form.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Open, Picking, ReadyToPack, Packed, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status, matching its persisted
// form. Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsAllocatable reports whether an order in this status may still receive
// pick or shortage allocations. Only Open and Picking orders are candidates.
func (s Status) IsAllocatable() bool {
	return s == Open || s == Picking
}

// StartPicking transitions the status to Picking when the first pick lands.
//
// Valid transitions:
//   - Open -> Picking (first allocation)
//   - Picking -> Picking (subsequent allocations)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) StartPicking() (Status, error) {
	if !s.IsAllocatable() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start picking", s.String()),
		)
	}

	return Picking, nil
}

// MarkReady transitions the status to ReadyToPack once every item is fully
// picked or shorted.
//
// Valid transitions:
//   - Open -> ReadyToPack (order completed entirely by shortages)
//   - Picking -> ReadyToPack
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) MarkReady() (Status, error) {
	if !s.IsAllocatable() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to mark ready", s.String()),
		)
	}

	return ReadyToPack, nil
}

// Pack transitions the status to Packed when the final shipment batch packs.
//
// Valid transitions:
//   - ReadyToPack -> Packed
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Pack() (Status, error) {
	if s != ReadyToPack {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to pack", s.String()),
		)
	}

	return Packed, nil
}

// RevertToPicking transitions the status back to Picking. Used when a
// resolved stock exception makes a previously complete order incomplete
// again, or when a packed shipment batch advances to the next one.
//
// Valid transitions:
//   - ReadyToPack -> Picking
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) RevertToPicking() (Status, error) {
	if s != ReadyToPack {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to revert to picking", s.String()),
		)
	}

	return Picking, nil
}

// Cancel transitions the status to Cancelled. Allowed from any non-Packed,
// non-Cancelled state; cancellation is manual, never derived.
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Cancel() (Status, error) {
	if s == Packed || s == Cancelled {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
