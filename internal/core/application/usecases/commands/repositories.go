// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence; each handler executes as one
// all-or-nothing transaction against the inventory ledger.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ExceptionRepoFactory provides access to the stock exception repository within a transaction.
	ExceptionRepoFactory interface {
		StockExceptionRepository() ports.StockExceptionRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ExceptionUoW manages transactions for exception-only operations.
	// Used when commands only modify stock exception aggregates.
	ExceptionUoW interface {
		TxManager
		ExceptionRepoFactory
	}

	// ExceptionUoWFactory creates new exception unit of work instances.
	ExceptionUoWFactory interface {
		Create() ExceptionUoW
	}

	// UoW manages transactions across order and stock exception aggregates.
	// Used for commands that coordinate changes between both aggregate types,
	// such as marking shortages or resolving an exception.
	UoW interface {
		TxManager
		OrderRepoFactory
		ExceptionRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
