// Package orderrepo implements the OrderRepository port on PostgreSQL via GORM.
package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"ruralcart/internal/adapters/out/postgres/pgerrors"
	"ruralcart/internal/core/domain/model/order"
	"ruralcart/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tracker registers modified aggregates with the surrounding unit of work.
type Tracker interface {
	TrackAggregate(id int64, aggregate interface{})
}

// GormOrderRepository persists Order aggregates. The db handle it receives is
// either the unit of work's open transaction or the main connection.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker Tracker
}

// NewGormOrderRepository creates a repository bound to the given connection.
func NewGormOrderRepository(db *gorm.DB, tracker Tracker) *GormOrderRepository {
	return &GormOrderRepository{db: db, tracker: tracker}
}

// Add inserts the order with its line items and assigns the generated
// identifier back to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := DomainToDTO(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the order's lifecycle columns. Line items are immutable and
// never touched here.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := DomainToDTO(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]interface{}{
			"status":                dto.Status,
			"previous_driver_id":    dto.PreviousDriverID,
			"previous_driver_name":  dto.PreviousDriverName,
			"previous_driver_phone": dto.PreviousDriverPhone,
		})
	if result.Error != nil {
		return fmt.Errorf("update order %d: %w", dto.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order id", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order id", id)
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}

	return DtoToDomain(dto)
}

// GetForUpdate retrieves an order under FOR UPDATE NOWAIT. A held lock
// surfaces as a ConflictError so the caller can retry instead of queueing
// behind the competing transaction.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "NOWAIT"}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order id", id)
		}
		if pgerrors.IsLockNotAvailable(err) {
			return nil, errs.NewConflictErrorWithCause(
				fmt.Sprintf("order %d is locked by another operation", id), err)
		}
		return nil, fmt.Errorf("lock order %d: %w", id, err)
	}

	// Items are loaded outside the locking clause so the lock covers the
	// orders row only.
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&dto.Items, "order_id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("load items of order %d: %w", id, err)
	}

	return DtoToDomain(dto)
}

// GetByBuyer retrieves all orders placed by the given buyer, newest first.
func (r *GormOrderRepository) GetByBuyer(ctx context.Context, buyerID int64) ([]*order.Order, error) {
	return r.list(ctx, "buyer_id = ?", buyerID)
}

// GetBySeller retrieves all orders addressed to the given seller, newest first.
func (r *GormOrderRepository) GetBySeller(ctx context.Context, sellerID int64) ([]*order.Order, error) {
	return r.list(ctx, "seller_id = ?", sellerID)
}

func (r *GormOrderRepository) list(ctx context.Context, query string, arg interface{}) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Where(query, arg).
		Order("created_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	aggregates := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := DtoToDomain(dto)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, aggregate)
	}
	return aggregates, nil
}
