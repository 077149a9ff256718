package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stockexception"
)

// StockExceptionRepository defines the persistence contract for stock
// exception aggregates. Exceptions are created and mutated, never deleted.
type StockExceptionRepository interface {
	// Add persists a new stock exception.
	Add(ctx context.Context, aggregate *stockexception.StockException) error

	// Update persists flag and resolution changes to an existing exception.
	Update(ctx context.Context, aggregate *stockexception.StockException) error

	// Get retrieves a stock exception by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*stockexception.StockException, error)
}
