package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrSplitOrderCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrSplitOrderCommandIsNotConstructed = errors.New(
	"split order command is not constructed: use NewSplitOrderCommand constructor")

// SplitOrderCommand partitions an order's items into shipment batches.
type SplitOrderCommand struct {
	orderID     kernel.UUID
	assignments map[kernel.UUID]int

	guard guard.ConstructorGuard
}

// NewSplitOrderCommand creates a command assigning items to shipment batches.
// Assignments map item IDs to batch numbers starting at 1.
func NewSplitOrderCommand(orderID kernel.UUID, assignments map[kernel.UUID]int) (SplitOrderCommand, error) {
	cmd := SplitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return SplitOrderCommand{}, err
	}
	if err := cmd.setAssignments(assignments); err != nil {
		return SplitOrderCommand{}, err
	}

	return cmd, nil
}

func (c SplitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSplitOrderCommandIsNotConstructed)
}

func (c SplitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SplitOrderCommand) Assignments() map[kernel.UUID]int {
	return c.assignments
}

func (c *SplitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *SplitOrderCommand) setAssignments(assignments map[kernel.UUID]int) error {
	if len(assignments) == 0 {
		return errs.NewValueIsRequiredError("assignments")
	}

	c.assignments = assignments
	return nil
}
