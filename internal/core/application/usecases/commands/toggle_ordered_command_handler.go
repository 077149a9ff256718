package commands

import (
	"context"
)

// ToggleOrderedResult reports the new value of the ordered-from-company flag.
type ToggleOrderedResult struct {
	OrderedFromCompany bool
}

// ToggleOrderedCommandHandler flips the ordered-from-company flag on a stock
// exception and persists it.
type ToggleOrderedCommandHandler struct {
	uowFactory ExceptionUoWFactory
}

// NewToggleOrderedCommandHandler creates a handler for the toggle command.
func NewToggleOrderedCommandHandler(uowFactory ExceptionUoWFactory) ToggleOrderedCommandHandler {
	return ToggleOrderedCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ToggleOrderedCommandHandler) Handle(
	ctx context.Context,
	cmd ToggleOrderedCommand,
) (*ToggleOrderedResult, error) {
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

	exception, err := exceptionRepo.Get(ctx, cmd.ExceptionID())
	if err != nil {
		return nil, err
	}

	newValue := exception.ToggleOrderedFromCompany()

	if err = exceptionRepo.Update(ctx, exception); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &ToggleOrderedResult{OrderedFromCompany: newValue}, nil
}
