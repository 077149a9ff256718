package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrSetOrderStateCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrSetOrderStateCommandIsNotConstructed = errors.New(
	"set order state command is not constructed: use NewSetOrderStateCommand constructor")

// SetOrderStateCommand forces an order into a specific lifecycle state,
// bypassing the readiness predicate. Only open, ready_to_pack, and packed are
// valid targets.
type SetOrderStateCommand struct {
	orderID kernel.UUID
	target  order.Status
	actor   string

	guard guard.ConstructorGuard
}

// NewSetOrderStateCommand creates an administrative state override command.
func NewSetOrderStateCommand(orderID kernel.UUID, target order.Status, actor string) (SetOrderStateCommand, error) {
	cmd := SetOrderStateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return SetOrderStateCommand{}, err
	}
	if err := cmd.setTarget(target); err != nil {
		return SetOrderStateCommand{}, err
	}
	if err := cmd.setActor(actor); err != nil {
		return SetOrderStateCommand{}, err
	}

	return cmd, nil
}

func (c SetOrderStateCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStateCommandIsNotConstructed)
}

func (c SetOrderStateCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetOrderStateCommand) Target() order.Status {
	return c.target
}

func (c SetOrderStateCommand) Actor() string {
	return c.actor
}

func (c *SetOrderStateCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *SetOrderStateCommand) setTarget(target order.Status) error {
	if target != order.Open && target != order.ReadyToPack && target != order.Packed {
		return errs.NewValueIsInvalidError("state")
	}

	c.target = target
	return nil
}

func (c *SetOrderStateCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
