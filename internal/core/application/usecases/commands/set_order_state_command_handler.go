package commands

import (
	"context"
	"time"
)

// SetOrderStateCommandHandler applies an administrative state override to an
// order.
type SetOrderStateCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetOrderStateCommandHandler creates a handler for the override command.
func NewSetOrderStateCommandHandler(uowFactory OrderUoWFactory) SetOrderStateCommandHandler {
	return SetOrderStateCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SetOrderStateCommandHandler) Handle(ctx context.Context, cmd SetOrderStateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ForceState(cmd.Target(), cmd.Actor(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
