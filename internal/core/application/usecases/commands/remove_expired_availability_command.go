package commands

import (
	"errors"
	"time"

	"ruralcart/internal/pkg/errs"
	"ruralcart/internal/pkg/guard"
)

var ErrRemoveExpiredAvailabilityCommandIsNotConstructed = errors.New(
	"RemoveExpiredAvailabilityCommand must be created via NewRemoveExpiredAvailabilityCommand constructor",
)

// RemoveExpiredAvailabilityCommand sweeps delivery windows dated before the
// given day. Issued by the scheduled cleanup job.
type RemoveExpiredAvailabilityCommand struct { //nolint:recvcheck //using for validation
	before time.Time

	guard guard.ConstructorGuard
}

// NewRemoveExpiredAvailabilityCommand creates a command to sweep expired
// windows.
func NewRemoveExpiredAvailabilityCommand(before time.Time) (RemoveExpiredAvailabilityCommand, error) {
	cmd := RemoveExpiredAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBefore(before); err != nil {
		return RemoveExpiredAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveExpiredAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrRemoveExpiredAvailabilityCommandIsNotConstructed)
}

// Before returns the day boundary; windows dated strictly before it expire.
func (c RemoveExpiredAvailabilityCommand) Before() time.Time {
	return c.before
}

func (c *RemoveExpiredAvailabilityCommand) setBefore(before time.Time) error {
	if before.IsZero() {
		return errs.NewValueIsRequiredError("cutoff day")
	}

	y, m, d := before.Date()
	c.before = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return nil
}
