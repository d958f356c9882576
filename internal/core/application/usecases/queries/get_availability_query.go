package queries

import (
	"errors"
	"time"

	"ruralcart/internal/pkg/errs"
	"ruralcart/internal/pkg/guard"
)

var ErrGetAvailabilityQueryIsNotConstructed = errors.New(
	"GetAvailabilityQuery must be created via NewGetAvailabilityQuery constructor",
)

// GetAvailabilityQuery retrieves published delivery windows, optionally
// narrowed to one driver. Buyers browse the full board to time their orders.
type GetAvailabilityQuery struct {
	driverID *int64

	guard guard.ConstructorGuard
}

// NewGetAvailabilityQuery creates a query for the availability board. driverID
// may be nil to include all drivers.
func NewGetAvailabilityQuery(driverID *int64) (GetAvailabilityQuery, error) {
	if driverID != nil && *driverID <= 0 {
		return GetAvailabilityQuery{}, errs.NewValueIsInvalidError("driver id")
	}

	return GetAvailabilityQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailabilityQueryIsNotConstructed)
}

// DriverID returns the optional driver filter, nil for all drivers.
func (q GetAvailabilityQuery) DriverID() *int64 {
	return q.driverID
}

// GetAvailabilityQueryResponse is one published delivery window with the
// declaring driver's directory entry.
type GetAvailabilityQueryResponse struct {
	ID          int64     `json:"id"`
	DriverID    int64     `json:"driver_id"`
	DriverName  string    `json:"driver_name"`
	DriverPhone string    `json:"driver_phone"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	Locations   []string  `json:"locations"`
}
