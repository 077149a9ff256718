// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items live in their own table and are loaded alongside the order row.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalID      string    `gorm:"index"`
	Number          string    `gorm:"index"`
	CustomerName    string
	Status          string `gorm:"index"`
	ReadyToPack     bool
	TotalShipments  int
	CurrentShipment int
	PackedAt        *time.Time
	PackedBy        string
	CreatedAt       time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line in the database.
type OrderItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	SKU           string    `gorm:"column:sku;index"`
	Title         string
	Category      string
	QtyOrdered    int
	QtyPicked     int
	QtyShort      int
	ShipmentBatch int
	CreatedAt     time.Time
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// PickEventDTO represents one audit trail entry. Pick events are append-only:
// they are inserted when an aggregate is persisted and never loaded back into
// the domain model.
type PickEventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	ItemID     uuid.UUID `gorm:"type:uuid;index"`
	Qty        int
	Actor      string
	Notes      string
	OccurredAt time.Time
}

// TableName specifies the database table name for pick events.
func (PickEventDTO) TableName() string {
	return "pick_events"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, []OrderItemDTO, []PickEventDTO) {
	orderID := aggregate.ID().Bytes()

	dto := OrderDTO{
		ID:              orderID,
		ExternalID:      aggregate.ExternalID(),
		Number:          aggregate.Number(),
		CustomerName:    aggregate.CustomerName(),
		Status:          aggregate.Status().String(),
		ReadyToPack:     aggregate.IsReadyToPack(),
		TotalShipments:  aggregate.TotalShipments(),
		CurrentShipment: aggregate.CurrentShipment(),
		PackedAt:        aggregate.PackedAt(),
		PackedBy:        aggregate.PackedBy(),
		CreatedAt:       aggregate.CreatedAt(),
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:            item.ID().Bytes(),
			OrderID:       orderID,
			SKU:           item.SKU(),
			Title:         item.Title(),
			Category:      item.Category(),
			QtyOrdered:    item.QtyOrdered(),
			QtyPicked:     item.QtyPicked(),
			QtyShort:      item.QtyShort(),
			ShipmentBatch: item.ShipmentBatch(),
			CreatedAt:     item.CreatedAt(),
		})
	}

	events := make([]PickEventDTO, 0, len(aggregate.PickEvents()))
	for _, event := range aggregate.PickEvents() {
		events = append(events, PickEventDTO{
			ID:         event.ID().Bytes(),
			OrderID:    orderID,
			ItemID:     event.ItemID().Bytes(),
			Qty:        event.Qty(),
			Actor:      event.Actor(),
			Notes:      event.Notes(),
			OccurredAt: event.OccurredAt(),
		})
	}

	return dto, items, events
}

// toDomain converts database rows to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(
			itemID,
			itemDTO.SKU,
			itemDTO.Title,
			itemDTO.Category,
			itemDTO.QtyOrdered,
			itemDTO.QtyPicked,
			itemDTO.QtyShort,
			itemDTO.ShipmentBatch,
			itemDTO.CreatedAt,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.ExternalID,
		dto.Number,
		dto.CustomerName,
		status,
		dto.ReadyToPack,
		dto.TotalShipments,
		dto.CurrentShipment,
		dto.PackedAt,
		dto.PackedBy,
		dto.CreatedAt,
		items,
	)
}
