package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrMarkShortCommandIsNotConstructed = errors.New(
		"MarkShortCommand must be created via NewMarkShortCommand constructor",
	)
	ErrAllocationsAreRequired = errs.NewValueIsRequiredError("allocations")
)

// ShortAllocation assigns part of a reported shortage to one order.
type ShortAllocation struct {
	OrderID  kernel.UUID
	QtyShort int
}

// MarkShortCommand represents a request to record a SKU as unavailable for
// specific orders. Each allocation names an order and how many of its units
// are short; allocations that cannot be applied are skipped individually
// rather than failing the whole request.
//
// Example:
//
//	cmd, err := NewMarkShortCommand("SKU-RED-M", []ShortAllocation{
//	    {OrderID: orderID, QtyShort: 2},
//	}, "jane", "supplier delayed")
type MarkShortCommand struct { //nolint:recvcheck //using for validation
	sku         string
	allocations []ShortAllocation
	actor       string
	notes       string

	guard guard.ConstructorGuard
}

// NewMarkShortCommand creates a command to mark the SKU short for the given
// allocations. The SKU and actor are required and the allocation set must not
// be empty; per-allocation validity is checked during handling.
func NewMarkShortCommand(sku string, allocations []ShortAllocation, actor, notes string) (MarkShortCommand, error) {
	cmd := MarkShortCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSKU(sku),
		cmd.setAllocations(allocations),
		cmd.setActor(actor),
	); err != nil {
		return MarkShortCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkShortCommand) Validate() error {
	return c.guard.Validate(ErrMarkShortCommandIsNotConstructed)
}

// SKU returns the stock-keeping unit that is out of stock.
func (c MarkShortCommand) SKU() string {
	return c.sku
}

// Allocations returns the per-order shortage assignments.
func (c MarkShortCommand) Allocations() []ShortAllocation {
	return c.allocations
}

// Actor returns the identity of the user reporting the shortage.
func (c MarkShortCommand) Actor() string {
	return c.actor
}

// Notes returns the optional free-text notes for the exception record.
func (c MarkShortCommand) Notes() string {
	return c.notes
}

func (c *MarkShortCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}
	c.sku = sku
	return nil
}

func (c *MarkShortCommand) setAllocations(allocations []ShortAllocation) error {
	if len(allocations) == 0 {
		return ErrAllocationsAreRequired
	}
	c.allocations = allocations
	return nil
}

func (c *MarkShortCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
