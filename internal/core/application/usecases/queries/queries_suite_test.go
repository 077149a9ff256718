package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/exceptionrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stockexception"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repositories' tracker dependency.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}

// pgQuerySuite is the shared fixture for query handler integration tests:
// a PostgreSQL container with the full schema, truncated before each test,
// and seeded through the same repositories the write side uses.
type pgQuerySuite struct {
	suite.Suite
	container     *postgres.PostgresContainer
	db            *gorm.DB
	orderRepo     *orderrepo.GormOrderRepository
	exceptionRepo *exceptionrepo.GormStockExceptionRepository
}

func (suite *pgQuerySuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.PickEventDTO{},
		&exceptionrepo.StockExceptionDTO{},
	)
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.exceptionRepo = exceptionrepo.NewGormStockExceptionRepository(db, &mockAggregateTracker{})
}

func (suite *pgQuerySuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, pick_events, stock_exceptions").Error
	suite.Require().NoError(err)
}

func (suite *pgQuerySuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// seedOrder persists a fresh order with one line per given SKU and quantity.
func (suite *pgQuerySuite) seedOrder(
	number string, createdAt time.Time, lines map[string]int,
) (*order.Order, map[string]kernel.UUID) {
	o, err := order.NewOrder(kernel.NewUUID(), "ext-"+number, number, "Customer "+number, createdAt)
	suite.Require().NoError(err)

	itemIDs := make(map[string]kernel.UUID, len(lines))
	for sku, qty := range lines {
		itemID := kernel.NewUUID()
		suite.Require().NoError(o.AddItem(itemID, sku, "Widget "+sku, "Widgets", qty, createdAt))
		itemIDs[sku] = itemID
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o, itemIDs
}

func (suite *pgQuerySuite) seedException(
	sku string, qtyShort int, orderNumbers []string, reportedAt time.Time,
) *stockexception.StockException {
	exception, err := stockexception.NewStockException(
		kernel.NewUUID(), sku, "Widget "+sku, "Widgets",
		qtyShort, orderNumbers, "jane", "", reportedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.exceptionRepo.Add(context.Background(), exception))
	return exception
}

func (suite *pgQuerySuite) updateOrder(o *order.Order) {
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), o))
}

func skipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
}
