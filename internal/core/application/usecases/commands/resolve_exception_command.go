package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrResolveExceptionCommandIsNotConstructed = errors.New(
	"ResolveExceptionCommand must be created via NewResolveExceptionCommand constructor",
)

// ResolveExceptionCommand represents a request to resolve a stock exception:
// the missing stock is back, so the shortage recorded against the affected
// orders should be restored to pickable quantity wherever that is still
// possible.
type ResolveExceptionCommand struct { //nolint:recvcheck //using for validation
	exceptionID kernel.UUID
	actor       string

	guard guard.ConstructorGuard
}

// NewResolveExceptionCommand creates a command to resolve the given exception.
// Validates that the exception ID is valid and the actor is present.
func NewResolveExceptionCommand(exceptionID kernel.UUID, actor string) (ResolveExceptionCommand, error) {
	cmd := ResolveExceptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setExceptionID(exceptionID),
		cmd.setActor(actor),
	); err != nil {
		return ResolveExceptionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveExceptionCommand) Validate() error {
	return c.guard.Validate(ErrResolveExceptionCommandIsNotConstructed)
}

// ExceptionID returns the identifier of the exception to resolve.
func (c ResolveExceptionCommand) ExceptionID() kernel.UUID {
	return c.exceptionID
}

// Actor returns the identity of the user resolving the exception.
func (c ResolveExceptionCommand) Actor() string {
	return c.actor
}

func (c *ResolveExceptionCommand) setExceptionID(exceptionID kernel.UUID) error {
	if err := exceptionID.Validate(); err != nil {
		return err
	}
	c.exceptionID = exceptionID
	return nil
}

func (c *ResolveExceptionCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
