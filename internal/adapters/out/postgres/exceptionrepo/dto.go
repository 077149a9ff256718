// Package exceptionrepo provides data transfer objects and mapping functions
// for stock exception persistence.
package exceptionrepo

import (
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stockexception"

	"github.com/google/uuid"
)

// StockExceptionDTO represents the database structure for persisting stock
// exceptions. Order numbers are stored comma-joined; the set is small and is
// only ever read back whole.
type StockExceptionDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU                string    `gorm:"column:sku;index"`
	ProductTitle       string
	Category           string
	QtyShort           int
	OrderNumbers       string
	ReportedBy         string
	ReportedAt         time.Time `gorm:"index"`
	Resolved           bool      `gorm:"index"`
	OrderedFromCompany bool
	NACancel           bool `gorm:"column:na_cancel"`
	Notes              string
}

// TableName specifies the database table name for stock exceptions.
func (StockExceptionDTO) TableName() string {
	return "stock_exceptions"
}

// fromDomain converts a stock exception aggregate to its database representation.
func fromDomain(aggregate *stockexception.StockException) StockExceptionDTO {
	return StockExceptionDTO{
		ID:                 aggregate.ID().Bytes(),
		SKU:                aggregate.SKU(),
		ProductTitle:       aggregate.ProductTitle(),
		Category:           aggregate.Category(),
		QtyShort:           aggregate.QtyShort(),
		OrderNumbers:       strings.Join(aggregate.OrderNumbers(), ","),
		ReportedBy:         aggregate.ReportedBy(),
		ReportedAt:         aggregate.ReportedAt(),
		Resolved:           aggregate.IsResolved(),
		OrderedFromCompany: aggregate.IsOrderedFromCompany(),
		NACancel:           aggregate.IsNACancel(),
		Notes:              aggregate.Notes(),
	}
}

// toDomain converts a database DTO to a stock exception aggregate.
func toDomain(dto StockExceptionDTO) (*stockexception.StockException, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var orderNumbers []string
	if dto.OrderNumbers != "" {
		orderNumbers = strings.Split(dto.OrderNumbers, ",")
	}

	return stockexception.RestoreStockException(
		id,
		dto.SKU,
		dto.ProductTitle,
		dto.Category,
		dto.QtyShort,
		orderNumbers,
		dto.ReportedBy,
		dto.Notes,
		dto.ReportedAt,
		dto.Resolved,
		dto.OrderedFromCompany,
		dto.NACancel,
	)
}
