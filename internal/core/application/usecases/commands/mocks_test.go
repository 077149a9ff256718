package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stockexception"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllocatableBySKU(ctx context.Context, sku string) ([]*order.Order, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumbers(
	ctx context.Context, numbers []string, statuses []order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, numbers, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumbersForUpdate(
	ctx context.Context, numbers []string, statuses []order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, numbers, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockStockExceptionRepository struct{ mock.Mock }

func (m *MockStockExceptionRepository) Add(ctx context.Context, e *stockexception.StockException) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockStockExceptionRepository) Update(ctx context.Context, e *stockexception.StockException) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockStockExceptionRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*stockexception.StockException, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stockexception.StockException), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StockExceptionRepository() ports.StockExceptionRepository {
	args := m.Called()
	return args.Get(0).(ports.StockExceptionRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockExceptionUoWFactory struct{ mock.Mock }

func (m *MockExceptionUoWFactory) Create() commands.ExceptionUoW {
	args := m.Called()
	return args.Get(0).(commands.ExceptionUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// newTestOrder builds an open order with a single item for the given SKU.
func newTestOrder(t *testing.T, number, sku string, qtyOrdered int, createdAt time.Time) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), "ext-"+number, number, "Test Customer", createdAt)
	require.NoError(t, err)
	require.NoError(t, o.AddItem(kernel.NewUUID(), sku, "Widget "+sku, "Widgets", qtyOrdered, createdAt))
	return o
}
