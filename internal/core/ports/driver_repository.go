// Package ports defines the contracts between the application core and its
// adapters: repositories over the persistent store, the unit of work that
// scopes them to one transaction, and the outbound notifier.
package ports

import (
	"context"
	"time"

	"ruralcart/internal/core/domain/model/driver"
)

// DriverRepository defines the persistence contract for driver aggregates and
// their availability windows.
type DriverRepository interface {
	// Add persists a new driver and assigns the generated identifier back to
	// the aggregate. A duplicate phone or user id surfaces as a ConflictError.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by identifier.
	Get(ctx context.Context, id int64) (*driver.Driver, error)

	// GetByPhone resolves a phone number to a driver. This is the driver
	// directory lookup the transfer protocol starts from.
	GetByPhone(ctx context.Context, phone string) (*driver.Driver, error)

	// AddAvailability persists a new availability window.
	AddAvailability(ctx context.Context, window *driver.Availability) error

	// GetAvailability retrieves a driver's availability windows.
	GetAvailability(ctx context.Context, driverID int64) ([]*driver.Availability, error)

	// RemoveAvailability deletes one availability window by identifier.
	RemoveAvailability(ctx context.Context, id int64) error

	// RemoveExpiredAvailability deletes windows dated strictly before the given
	// day and reports how many were removed.
	RemoveExpiredAvailability(ctx context.Context, before time.Time) (int64, error)
}
