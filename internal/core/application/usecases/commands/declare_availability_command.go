package commands

import (
	"errors"
	"time"

	"ruralcart/internal/pkg/errs"
	"ruralcart/internal/pkg/guard"
)

var ErrDeclareAvailabilityCommandIsNotConstructed = errors.New(
	"DeclareAvailabilityCommand must be created via NewDeclareAvailabilityCommand constructor",
)

// DeclareAvailabilityCommand represents a driver publishing a delivery window:
// a date, a start time, and the locations they will serve.
type DeclareAvailabilityCommand struct { //nolint:recvcheck //using for validation
	driverID  int64
	date      time.Time
	startTime string
	locations []string

	guard guard.ConstructorGuard
}

// NewDeclareAvailabilityCommand creates a command to publish an availability
// window. Deep validation of the window belongs to the domain constructor.
func NewDeclareAvailabilityCommand(driverID int64, date time.Time, startTime string, locations []string) (DeclareAvailabilityCommand, error) {
	cmd := DeclareAvailabilityCommand{
		date:      date,
		startTime: startTime,
		locations: append([]string(nil), locations...),
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setDriverID(driverID); err != nil {
		return DeclareAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclareAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrDeclareAvailabilityCommandIsNotConstructed)
}

// DriverID returns the declaring driver.
func (c DeclareAvailabilityCommand) DriverID() int64 {
	return c.driverID
}

// Date returns the day the window applies to.
func (c DeclareAvailabilityCommand) Date() time.Time {
	return c.date
}

// StartTime returns the window's start time in "15:04" form.
func (c DeclareAvailabilityCommand) StartTime() string {
	return c.startTime
}

// Locations returns the serviced locations.
func (c DeclareAvailabilityCommand) Locations() []string {
	return append([]string(nil), c.locations...)
}

func (c *DeclareAvailabilityCommand) setDriverID(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driver id")
	}

	c.driverID = driverID
	return nil
}
