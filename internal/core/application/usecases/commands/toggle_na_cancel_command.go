package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrToggleNACancelCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrToggleNACancelCommandIsNotConstructed = errors.New(
	"toggle na cancel command is not constructed: use NewToggleNACancelCommand constructor")

// ToggleNACancelCommand flips the not-available/cancelled flag on a stock
// exception. Marking a shortage as NA/cancel means the missing units will
// never arrive, so orders waiting only on that shortage are re-checked for
// readiness.
type ToggleNACancelCommand struct {
	exceptionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewToggleNACancelCommand creates a command to toggle the NA/cancel flag.
func NewToggleNACancelCommand(exceptionID kernel.UUID) (ToggleNACancelCommand, error) {
	cmd := ToggleNACancelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setExceptionID(exceptionID); err != nil {
		return ToggleNACancelCommand{}, err
	}

	return cmd, nil
}

func (c ToggleNACancelCommand) Validate() error {
	return c.guard.Validate(ErrToggleNACancelCommandIsNotConstructed)
}

func (c ToggleNACancelCommand) ExceptionID() kernel.UUID {
	return c.exceptionID
}

func (c *ToggleNACancelCommand) setExceptionID(exceptionID kernel.UUID) error {
	if err := exceptionID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("exceptionID")
	}

	c.exceptionID = exceptionID
	return nil
}
