package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrRevertOrderCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrRevertOrderCommandIsNotConstructed = errors.New(
	"revert order command is not constructed: use NewRevertOrderCommand constructor")

// RevertOrderCommand sends a ready-to-pack or packed order back to open,
// clearing its picked quantities so picking starts over.
type RevertOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRevertOrderCommand creates a command reverting an order to open.
func NewRevertOrderCommand(orderID kernel.UUID) (RevertOrderCommand, error) {
	cmd := RevertOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RevertOrderCommand{}, err
	}

	return cmd, nil
}

func (c RevertOrderCommand) Validate() error {
	return c.guard.Validate(ErrRevertOrderCommandIsNotConstructed)
}

func (c RevertOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RevertOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}
