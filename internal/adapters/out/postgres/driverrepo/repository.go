// Package driverrepo implements the DriverRepository port on PostgreSQL via
// GORM.
package driverrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ruralcart/internal/adapters/out/postgres/pgerrors"
	"ruralcart/internal/core/domain/model/driver"
	"ruralcart/internal/pkg/errs"

	"gorm.io/gorm"
)

// Tracker registers modified aggregates with the surrounding unit of work.
type Tracker interface {
	TrackAggregate(id int64, aggregate interface{})
}

// GormDriverRepository persists Driver aggregates and their availability
// windows.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker Tracker
}

// NewGormDriverRepository creates a repository bound to the given connection.
func NewGormDriverRepository(db *gorm.DB, tracker Tracker) *GormDriverRepository {
	return &GormDriverRepository{db: db, tracker: tracker}
}

// Add inserts the driver and assigns the generated identifier back to the
// aggregate. Unique-index violations on user id or phone surface as conflicts.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := DomainToDTO(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("driver already registered", err)
		}
		return fmt.Errorf("insert driver: %w", err)
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by identifier.
func (r *GormDriverRepository) Get(ctx context.Context, id int64) (*driver.Driver, error) {
	return r.getBy(ctx, "id = ?", id)
}

// GetByPhone resolves a phone number to a driver.
func (r *GormDriverRepository) GetByPhone(ctx context.Context, phone string) (*driver.Driver, error) {
	return r.getBy(ctx, "phone = ?", phone)
}

// AddAvailability inserts a new availability window and assigns the generated
// identifier back to it.
func (r *GormDriverRepository) AddAvailability(ctx context.Context, window *driver.Availability) error {
	if err := window.Validate(); err != nil {
		return err
	}

	dto := AvailabilityToDTO(window)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("insert availability: %w", err)
	}

	return window.AssignID(dto.ID)
}

// GetAvailability retrieves a driver's availability windows ordered by date.
func (r *GormDriverRepository) GetAvailability(ctx context.Context, driverID int64) ([]*driver.Availability, error) {
	var dtos []AvailabilityDTO
	err := r.db.WithContext(ctx).
		Where("driver_id = ?", driverID).
		Order("date, start_time").
		Find(&dtos).Error
	if err != nil {
		return nil, fmt.Errorf("list availability of driver %d: %w", driverID, err)
	}

	windows := make([]*driver.Availability, 0, len(dtos))
	for _, dto := range dtos {
		window, err := AvailabilityToDomain(dto)
		if err != nil {
			return nil, err
		}
		windows = append(windows, window)
	}
	return windows, nil
}

// RemoveAvailability deletes one availability window by identifier.
func (r *GormDriverRepository) RemoveAvailability(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&AvailabilityDTO{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete availability %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("availability id", id)
	}
	return nil
}

// RemoveExpiredAvailability deletes windows dated strictly before the given day
// and reports how many were removed.
func (r *GormDriverRepository) RemoveExpiredAvailability(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&AvailabilityDTO{}, "date < ?", before)
	if result.Error != nil {
		return 0, fmt.Errorf("delete expired availability: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormDriverRepository) getBy(ctx context.Context, query string, arg interface{}) (*driver.Driver, error) {
	var dto DriverDTO
	err := r.db.WithContext(ctx).First(&dto, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", arg)
		}
		return nil, fmt.Errorf("get driver: %w", err)
	}

	return DtoToDomain(dto)
}
