package commands

import (
	"context"
)

// UnsplitOrderCommandHandler merges an order's shipment batches back into one.
type UnsplitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUnsplitOrderCommandHandler creates a handler for the unsplit command.
func NewUnsplitOrderCommandHandler(uowFactory OrderUoWFactory) UnsplitOrderCommandHandler {
	return UnsplitOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UnsplitOrderCommandHandler) Handle(ctx context.Context, cmd UnsplitOrderCommand) error {
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

	if err = o.Unsplit(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
