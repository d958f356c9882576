// Package custodyrepo implements the CustodyRepository port on PostgreSQL via
// GORM.
package custodyrepo

import (
	"context"
	"errors"
	"fmt"

	"ruralcart/internal/adapters/out/postgres/pgerrors"
	"ruralcart/internal/core/domain/model/custody"
	"ruralcart/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tracker registers modified aggregates with the surrounding unit of work.
type Tracker interface {
	TrackAggregate(id int64, aggregate interface{})
}

// GormCustodyRepository persists the driver-order custody ledger.
type GormCustodyRepository struct {
	db      *gorm.DB
	tracker Tracker
}

// NewGormCustodyRepository creates a repository bound to the given connection.
func NewGormCustodyRepository(db *gorm.DB, tracker Tracker) *GormCustodyRepository {
	return &GormCustodyRepository{db: db, tracker: tracker}
}

// Append inserts a new ledger record and assigns the generated identifier back
// to it.
func (r *GormCustodyRepository) Append(ctx context.Context, record *custody.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := DomainToDTO(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("insert custody record: %w", err)
	}

	if err := record.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Update rewrites the custodian columns of an existing record. Only the active
// claim is ever updated, during a transfer.
func (r *GormCustodyRepository) Update(ctx context.Context, record *custody.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := DomainToDTO(record)
	result := r.db.WithContext(ctx).
		Model(&RecordDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]interface{}{
			"driver_id":             dto.DriverID,
			"previous_driver_id":    dto.PreviousDriverID,
			"previous_driver_name":  dto.PreviousDriverName,
			"previous_driver_phone": dto.PreviousDriverPhone,
		})
	if result.Error != nil {
		return fmt.Errorf("update custody record %d: %w", dto.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("custody record id", dto.ID)
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetActiveForUpdate retrieves the order's active claim under FOR UPDATE
// NOWAIT. Absence of an accepted record means nobody holds the order.
func (r *GormCustodyRepository) GetActiveForUpdate(ctx context.Context, orderID int64) (*custody.Record, error) {
	var dto RecordDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "NOWAIT"}).
		Where("order_id = ? AND action = ?", orderID, custody.ActionAccepted.String()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active claim for order", orderID)
		}
		if pgerrors.IsLockNotAvailable(err) {
			return nil, errs.NewConflictErrorWithCause(
				fmt.Sprintf("custody of order %d is locked by another operation", orderID), err)
		}
		return nil, fmt.Errorf("lock active claim of order %d: %w", orderID, err)
	}

	return DtoToDomain(dto)
}

// History retrieves the full ledger of an order in append order.
func (r *GormCustodyRepository) History(ctx context.Context, orderID int64) ([]*custody.Record, error) {
	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, fmt.Errorf("list custody records of order %d: %w", orderID, err)
	}

	records := make([]*custody.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := DtoToDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
