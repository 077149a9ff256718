package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Aggregates are loaded complete with their items; pick events accumulated on
// an aggregate are persisted on Update and never loaded back.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	// Orders are created by the ingestion side; the engine itself only updates.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate: order fields,
	// item quantities and batch assignments, and any new pick events.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate by its unique identifier and
	// locks the order row and its item rows for the duration of the
	// surrounding transaction. Mutating handlers must load through this
	// method so a concurrent writer cannot commit between the read and the
	// Update that follows it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllocatableBySKU retrieves, oldest first, every order that currently
	// has a pickable item for the SKU: status Open or Picking, not ready to
	// pack, with remaining quantity on an item in the active shipment batch.
	// Implementations must lock the returned item rows for the duration of
	// the surrounding transaction so concurrent allocations for the same SKU
	// serialize.
	GetAllocatableBySKU(ctx context.Context, sku string) ([]*order.Order, error)

	// GetByNumbers retrieves the orders with the given display numbers whose
	// status is one of the provided statuses.
	GetByNumbers(ctx context.Context, numbers []string, statuses []order.Status) ([]*order.Order, error)

	// GetByNumbersForUpdate behaves like GetByNumbers but locks the matched
	// order rows and their item rows for the duration of the surrounding
	// transaction.
	GetByNumbersForUpdate(ctx context.Context, numbers []string, statuses []order.Status) ([]*order.Order, error)
}
