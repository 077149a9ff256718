package exceptionrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stockexception"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStockExceptionRepository implements StockExceptionRepository using GORM.
type GormStockExceptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStockExceptionRepository creates a new GORM stock exception repository.
func NewGormStockExceptionRepository(db *gorm.DB, tracker aggregateTracker) *GormStockExceptionRepository {
	return &GormStockExceptionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stock exception to the database.
func (r *GormStockExceptionRepository) Add(ctx context.Context, aggregate *stockexception.StockException) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves flag and resolution changes to an existing stock exception.
func (r *GormStockExceptionRepository) Update(ctx context.Context, aggregate *stockexception.StockException) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StockExceptionDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "reported_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a stock exception by ID.
func (r *GormStockExceptionRepository) Get(ctx context.Context, id kernel.UUID) (*stockexception.StockException, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StockExceptionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stockException", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
