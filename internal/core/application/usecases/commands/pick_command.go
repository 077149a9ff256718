package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrPickCommandIsNotConstructed = errors.New(
		"PickCommand must be created via NewPickCommand constructor",
	)
	ErrSKUIsRequired   = errs.NewValueIsRequiredError("sku")
	ErrActorIsRequired = errs.NewValueIsRequiredError("actor")
)

// PickCommand represents a request to pick a quantity of one SKU off the
// shelf and distribute it across the outstanding orders competing for it,
// oldest order first.
//
// Example:
//
//	cmd, err := NewPickCommand("SKU-RED-M", 4, "jane", "")
//	if err != nil {
//	    return fmt.Errorf("invalid pick request: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type PickCommand struct { //nolint:recvcheck //using for validation
	sku      string
	quantity int
	actor    string
	notes    string

	guard guard.ConstructorGuard
}

// NewPickCommand creates a command to pick quantity units of the SKU.
// Validates that the SKU and actor are present and the quantity is positive.
func NewPickCommand(sku string, quantity int, actor, notes string) (PickCommand, error) {
	cmd := PickCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSKU(sku),
		cmd.setQuantity(quantity),
		cmd.setActor(actor),
	); err != nil {
		return PickCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PickCommand) Validate() error {
	return c.guard.Validate(ErrPickCommandIsNotConstructed)
}

// SKU returns the stock-keeping unit to pick.
func (c PickCommand) SKU() string {
	return c.sku
}

// Quantity returns the number of units to pick.
func (c PickCommand) Quantity() int {
	return c.quantity
}

// Actor returns the identity of the user performing the pick.
func (c PickCommand) Actor() string {
	return c.actor
}

// Notes returns the optional free-text notes for the audit trail.
func (c PickCommand) Notes() string {
	return c.notes
}

func (c *PickCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}
	c.sku = sku
	return nil
}

func (c *PickCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, 1_000_000)
	}
	c.quantity = quantity
	return nil
}

func (c *PickCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
