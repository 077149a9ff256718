package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items, events := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}
	if len(events) > 0 {
		if err := r.db.WithContext(ctx).Create(&events).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database: the order row, every item
// row, and any pick events accumulated on the aggregate since it was loaded.
// Event inserts are idempotent on the event ID, so persisting the same
// aggregate twice does not duplicate the audit trail.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items, events := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for _, item := range items {
		if err := r.db.WithContext(ctx).
			Model(&OrderItemDTO{}).
			Where("id = ?", item.ID).
			Select("qty_picked", "qty_short", "shipment_batch").
			Updates(&item).Error; err != nil {
			return err
		}
	}

	if len(events) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&events).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an order with its items by ID, locking the order row
// and its item rows FOR UPDATE until the surrounding transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, []uuid.UUID{dto.ID}, forUpdate)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, items[dto.ID])
}

// GetAllocatableBySKU retrieves, oldest first, every order with a currently
// pickable item for the SKU. The order and item rows are locked FOR UPDATE so
// two concurrent allocations for the same SKU serialize on the shared
// candidate set instead of both reading stale remaining quantities.
func (r *GormOrderRepository) GetAllocatableBySKU(ctx context.Context, sku string) ([]*order.Order, error) {
	allocatable := []string{order.Open.String(), order.Picking.String()}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("status IN ?", allocatable).
		Where("ready_to_pack = ?", false).
		Where(`id IN (
			SELECT i.order_id FROM order_items i
			WHERE i.sku = ?
			  AND i.shipment_batch = orders.current_shipment
			  AND i.qty_ordered - i.qty_picked - i.qty_short > 0
		)`, sku).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.assemble(ctx, dtos, true)
}

// GetByNumbers retrieves the orders with the given display numbers in one of
// the given statuses.
func (r *GormOrderRepository) GetByNumbers(
	ctx context.Context,
	numbers []string,
	statuses []order.Status,
) ([]*order.Order, error) {
	return r.getByNumbers(ctx, numbers, statuses, false)
}

// GetByNumbersForUpdate retrieves the orders with the given display numbers in
// one of the given statuses, locking the order and item rows FOR UPDATE until
// the surrounding transaction ends.
func (r *GormOrderRepository) GetByNumbersForUpdate(
	ctx context.Context,
	numbers []string,
	statuses []order.Status,
) ([]*order.Order, error) {
	return r.getByNumbers(ctx, numbers, statuses, true)
}

func (r *GormOrderRepository) getByNumbers(
	ctx context.Context,
	numbers []string,
	statuses []order.Status,
	forUpdate bool,
) ([]*order.Order, error) {
	if len(numbers) == 0 {
		return []*order.Order{}, nil
	}

	statusStrings := make([]string, 0, len(statuses))
	for _, status := range statuses {
		statusStrings = append(statusStrings, status.String())
	}

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dtos []OrderDTO
	err := query.
		Where("number IN ?", numbers).
		Where("status IN ?", statusStrings).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.assemble(ctx, dtos, forUpdate)
}

func (r *GormOrderRepository) assemble(ctx context.Context, dtos []OrderDTO, forUpdate bool) ([]*order.Order, error) {
	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}

	items, err := r.loadItems(ctx, ids, forUpdate)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto, items[dto.ID])
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

func (r *GormOrderRepository) loadItems(
	ctx context.Context,
	orderIDs []uuid.UUID,
	forUpdate bool,
) (map[uuid.UUID][]OrderItemDTO, error) {
	byOrder := make(map[uuid.UUID][]OrderItemDTO, len(orderIDs))
	if len(orderIDs) == 0 {
		return byOrder, nil
	}

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var itemDTOs []OrderItemDTO
	err := query.
		Where("order_id IN ?", orderIDs).
		Order("created_at").
		Find(&itemDTOs).Error
	if err != nil {
		return nil, err
	}

	for _, itemDTO := range itemDTOs {
		byOrder[itemDTO.OrderID] = append(byOrder[itemDTO.OrderID], itemDTO)
	}
	return byOrder, nil
}
