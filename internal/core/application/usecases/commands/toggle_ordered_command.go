package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrToggleOrderedCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrToggleOrderedCommandIsNotConstructed = errors.New(
	"toggle ordered command is not constructed: use NewToggleOrderedCommand constructor")

// ToggleOrderedCommand flips the ordered-from-company flag on a stock
// exception, recording that replacement stock has been ordered from the
// supplier.
type ToggleOrderedCommand struct {
	exceptionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewToggleOrderedCommand creates a command to toggle the supplier-order flag.
func NewToggleOrderedCommand(exceptionID kernel.UUID) (ToggleOrderedCommand, error) {
	cmd := ToggleOrderedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setExceptionID(exceptionID); err != nil {
		return ToggleOrderedCommand{}, err
	}

	return cmd, nil
}

func (c ToggleOrderedCommand) Validate() error {
	return c.guard.Validate(ErrToggleOrderedCommandIsNotConstructed)
}

func (c ToggleOrderedCommand) ExceptionID() kernel.UUID {
	return c.exceptionID
}

func (c *ToggleOrderedCommand) setExceptionID(exceptionID kernel.UUID) error {
	if err := exceptionID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("exceptionID")
	}

	c.exceptionID = exceptionID
	return nil
}
