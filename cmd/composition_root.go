package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/notifier"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreatePickCommandHandler() commands.PickCommandHandler {
	return commands.NewPickCommandHandler(c.orderFactory())
}

func (c *CompositionRoot) CreateMarkShortCommandHandler() commands.MarkShortCommandHandler {
	return commands.NewMarkShortCommandHandler(c.crossAggregateFactory())
}

func (c *CompositionRoot) CreateResolveExceptionCommandHandler() commands.ResolveExceptionCommandHandler {
	return commands.NewResolveExceptionCommandHandler(c.crossAggregateFactory())
}

func (c *CompositionRoot) CreateToggleOrderedCommandHandler() commands.ToggleOrderedCommandHandler {
	var f commands.ExceptionUoWFactory = FuncExceptionUoWFactory(func() commands.ExceptionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewToggleOrderedCommandHandler(f)
}

func (c *CompositionRoot) CreateToggleNACancelCommandHandler() commands.ToggleNACancelCommandHandler {
	return commands.NewToggleNACancelCommandHandler(c.crossAggregateFactory())
}

func (c *CompositionRoot) CreateSplitOrderCommandHandler() commands.SplitOrderCommandHandler {
	return commands.NewSplitOrderCommandHandler(c.orderFactory())
}

func (c *CompositionRoot) CreateUnsplitOrderCommandHandler() commands.UnsplitOrderCommandHandler {
	return commands.NewUnsplitOrderCommandHandler(c.orderFactory())
}

func (c *CompositionRoot) CreatePackOrderCommandHandler() commands.PackOrderCommandHandler {
	return commands.NewPackOrderCommandHandler(c.orderFactory())
}

func (c *CompositionRoot) CreateRevertOrderCommandHandler() commands.RevertOrderCommandHandler {
	return commands.NewRevertOrderCommandHandler(c.orderFactory())
}

func (c *CompositionRoot) CreateSetOrderStateCommandHandler() commands.SetOrderStateCommandHandler {
	return commands.NewSetOrderStateCommandHandler(c.orderFactory())
}

func (c *CompositionRoot) CreateGetPickListQueryHandler() queries.GetPickListQueryHandler {
	return queries.NewGetPickListQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPickListStatsQueryHandler() queries.GetPickListStatsQueryHandler {
	return queries.NewGetPickListStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersForSKUQueryHandler() queries.GetOrdersForSKUQueryHandler {
	return queries.NewGetOrdersForSKUQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockExceptionsQueryHandler() queries.GetStockExceptionsQueryHandler {
	return queries.NewGetStockExceptionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShortageSummaryQueryHandler() queries.GetShortageSummaryQueryHandler {
	return queries.NewGetShortageSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateNotificationSender() ports.NotificationSender {
	return notifier.NewLogNotificationSender(c.logger)
}

func (c *CompositionRoot) CreateJobManager(digestSchedule string) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetShortageSummaryQueryHandler(),
		c.CreateNotificationSender(),
		digestSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) orderFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossAggregateFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncExceptionUoWFactory func() commands.ExceptionUoW

func (f FuncExceptionUoWFactory) Create() commands.ExceptionUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
