package commands

import (
	"context"
)

// RevertOrderCommandHandler reverts a ready-to-pack or packed order to open.
// Picked quantities reset to zero; standing shortages stay on the items so
// their stock exceptions remain truthful.
type RevertOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRevertOrderCommandHandler creates a handler for the revert command.
func NewRevertOrderCommandHandler(uowFactory OrderUoWFactory) RevertOrderCommandHandler {
	return RevertOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RevertOrderCommandHandler) Handle(ctx context.Context, cmd RevertOrderCommand) error {
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

	if err = o.RevertToOpen(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
