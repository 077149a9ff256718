package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrUnsplitOrderCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrUnsplitOrderCommandIsNotConstructed = errors.New(
	"unsplit order command is not constructed: use NewUnsplitOrderCommand constructor")

// UnsplitOrderCommand collapses an order back into a single shipment batch.
type UnsplitOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnsplitOrderCommand creates a command removing an order's batch split.
func NewUnsplitOrderCommand(orderID kernel.UUID) (UnsplitOrderCommand, error) {
	cmd := UnsplitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UnsplitOrderCommand{}, err
	}

	return cmd, nil
}

func (c UnsplitOrderCommand) Validate() error {
	return c.guard.Validate(ErrUnsplitOrderCommandIsNotConstructed)
}

func (c UnsplitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *UnsplitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}
