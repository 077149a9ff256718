package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// ToggleNACancelResult reports the new flag value and any orders that became
// ready to pack as a consequence.
type ToggleNACancelResult struct {
	NACancel        bool
	OrdersMadeReady []string
}

// ToggleNACancelCommandHandler flips the NA/cancel flag on a stock exception.
//
// Recording a shortage keeps the affected orders out of the ready queue until
// someone decides the missing stock will never arrive. Flipping NA/cancel on
// is that decision: the handler re-evaluates readiness for every order the
// exception touches, so orders whose only gap was the written-off shortage
// move to ready to pack. Flipping the flag back off does not revert readiness.
type ToggleNACancelCommandHandler struct {
	uowFactory UoWFactory
}

// NewToggleNACancelCommandHandler creates a handler for the toggle command.
func NewToggleNACancelCommandHandler(uowFactory UoWFactory) ToggleNACancelCommandHandler {
	return ToggleNACancelCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ToggleNACancelCommandHandler) Handle(
	ctx context.Context,
	cmd ToggleNACancelCommand,
) (*ToggleNACancelResult, error) {
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

	exceptionRepo := uow.StockExceptionRepository()
	orderRepo := uow.OrderRepository()

	exception, err := exceptionRepo.Get(ctx, cmd.ExceptionID())
	if err != nil {
		return nil, err
	}

	newValue := exception.ToggleNACancel()

	result := &ToggleNACancelResult{NACancel: newValue}

	if newValue {
		orders, ordersErr := orderRepo.GetByNumbersForUpdate(ctx, exception.OrderNumbers(),
			[]order.Status{order.Open, order.Picking})
		if ordersErr != nil {
			return nil, ordersErr
		}

		for _, o := range orders {
			becameReady, readyErr := o.RefreshReadiness()
			if readyErr != nil {
				return nil, readyErr
			}
			if !becameReady {
				continue
			}

			if err = orderRepo.Update(ctx, o); err != nil {
				return nil, err
			}
			result.OrdersMadeReady = append(result.OrdersMadeReady, o.Number())
		}
	}

	if err = exceptionRepo.Update(ctx, exception); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}
