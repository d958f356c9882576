package driver

import (
	"errors"
	"time"

	"ruralcart/internal/pkg/errs"
)

// ErrAvailabilityIsNotConstructed is returned when an Availability instance was
// not created through NewAvailability or RestoreAvailability.
var ErrAvailabilityIsNotConstructed = errors.New(
	"Availability must be created via NewAvailability or RestoreAvailability",
)

// Availability is a driver-declared delivery window: the date the driver runs,
// the time the run starts, and the locations served.
type Availability struct {
	id        int64
	driverID  int64
	date      time.Time
	startTime string
	locations []string

	isConstructed bool
}

// NewAvailability creates a window pending persistence. The date is truncated
// to day precision; startTime must be in "15:04" form.
func NewAvailability(driverID int64, date time.Time, startTime string, locations []string) (*Availability, error) {
	if driverID <= 0 {
		return nil, errs.NewValueIsInvalidError("driver id")
	}
	if date.IsZero() {
		return nil, errs.NewValueIsRequiredError("availability date")
	}
	if _, err := time.Parse("15:04", startTime); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("start time", err)
	}
	if len(locations) == 0 {
		return nil, errs.NewValueIsRequiredError("availability locations")
	}

	return &Availability{
		driverID:      driverID,
		date:          time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		startTime:     startTime,
		locations:     append([]string(nil), locations...),
		isConstructed: true,
	}, nil
}

// RestoreAvailability reconstructs a window from persistence.
func RestoreAvailability(id int64, driverID int64, date time.Time, startTime string, locations []string) (*Availability, error) {
	a, err := NewAvailability(driverID, date, startTime, locations)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("availability id")
	}
	a.id = id
	return a, nil
}

// Validate ensures the Availability was created through a constructor.
func (a *Availability) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAvailabilityIsNotConstructed
	}
	return nil
}

// AssignID sets the store-generated identifier after the initial insert.
func (a *Availability) AssignID(id int64) error {
	if a.id != 0 {
		return errs.NewValueIsInvalidError("availability id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("availability id")
	}
	a.id = id
	return nil
}

// ID returns the window's identifier, zero before persistence.
func (a *Availability) ID() int64 {
	return a.id
}

// DriverID returns the declaring driver's identifier.
func (a *Availability) DriverID() int64 {
	return a.driverID
}

// Date returns the day the window applies to.
func (a *Availability) Date() time.Time {
	return a.date
}

// StartTime returns the window's start time in "15:04" form.
func (a *Availability) StartTime() string {
	return a.startTime
}

// Locations returns the serviced locations.
func (a *Availability) Locations() []string {
	return append([]string(nil), a.locations...)
}

// Expired reports whether the window's date lies strictly before the given day.
func (a *Availability) Expired(now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return a.date.Before(today)
}
