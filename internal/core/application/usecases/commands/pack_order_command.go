package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrPackOrderCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrPackOrderCommandIsNotConstructed = errors.New(
	"pack order command is not constructed: use NewPackOrderCommand constructor")

// PackOrderCommand records that the order's active shipment batch has been
// packed by the given actor.
type PackOrderCommand struct {
	orderID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewPackOrderCommand creates a command confirming a packed shipment batch.
func NewPackOrderCommand(orderID kernel.UUID, actor string) (PackOrderCommand, error) {
	cmd := PackOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return PackOrderCommand{}, err
	}
	if err := cmd.setActor(actor); err != nil {
		return PackOrderCommand{}, err
	}

	return cmd, nil
}

func (c PackOrderCommand) Validate() error {
	return c.guard.Validate(ErrPackOrderCommandIsNotConstructed)
}

func (c PackOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PackOrderCommand) Actor() string {
	return c.actor
}

func (c *PackOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *PackOrderCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
