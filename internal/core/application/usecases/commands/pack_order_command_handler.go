package commands

import (
	"context"
	"time"
)

// PackOrderResult reports the order's position after packing a batch.
//
// FullyPacked is true when the last batch was packed and the order is done;
// otherwise the order went back to picking for the next batch, identified by
// CurrentShipment.
type PackOrderResult struct {
	FullyPacked     bool
	CurrentShipment int
	TotalShipments  int
}

// PackOrderCommandHandler confirms the active shipment batch of a
// ready-to-pack order as packed and advances the order.
type PackOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPackOrderCommandHandler creates a handler for the pack command.
func NewPackOrderCommandHandler(uowFactory OrderUoWFactory) PackOrderCommandHandler {
	return PackOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h PackOrderCommandHandler) Handle(
	ctx context.Context,
	cmd PackOrderCommand,
) (*PackOrderResult, error) {
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

	fullyPacked, err := o.AdvanceAfterPack(cmd.Actor(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &PackOrderResult{
		FullyPacked:     fullyPacked,
		CurrentShipment: o.CurrentShipment(),
		TotalShipments:  o.TotalShipments(),
	}, nil
}
