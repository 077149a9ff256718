package commands

import (
	"context"
)

// SplitOrderResult reports the batch layout after a split.
type SplitOrderResult struct {
	TotalShipments  int
	CurrentShipment int
}

// SplitOrderCommandHandler applies a shipment batch partition to an order.
type SplitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSplitOrderCommandHandler creates a handler for the split command.
func NewSplitOrderCommandHandler(uowFactory OrderUoWFactory) SplitOrderCommandHandler {
	return SplitOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SplitOrderCommandHandler) Handle(
	ctx context.Context,
	cmd SplitOrderCommand,
) (*SplitOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Split(cmd.Assignments()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &SplitOrderResult{
		TotalShipments:  o.TotalShipments(),
		CurrentShipment: o.CurrentShipment(),
	}, nil
}
