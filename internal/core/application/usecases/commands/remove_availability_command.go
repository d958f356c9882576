package commands

import (
	"errors"

	"ruralcart/internal/pkg/errs"
	"ruralcart/internal/pkg/guard"
)

var ErrRemoveAvailabilityCommandIsNotConstructed = errors.New(
	"RemoveAvailabilityCommand must be created via NewRemoveAvailabilityCommand constructor",
)

// RemoveAvailabilityCommand represents a driver withdrawing one published
// delivery window.
type RemoveAvailabilityCommand struct { //nolint:recvcheck //using for validation
	availabilityID int64

	guard guard.ConstructorGuard
}

// NewRemoveAvailabilityCommand creates a command to withdraw an availability
// window.
func NewRemoveAvailabilityCommand(availabilityID int64) (RemoveAvailabilityCommand, error) {
	cmd := RemoveAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAvailabilityID(availabilityID); err != nil {
		return RemoveAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAvailabilityCommandIsNotConstructed)
}

// AvailabilityID returns the window being withdrawn.
func (c RemoveAvailabilityCommand) AvailabilityID() int64 {
	return c.availabilityID
}

func (c *RemoveAvailabilityCommand) setAvailabilityID(availabilityID int64) error {
	if availabilityID <= 0 {
		return errs.NewValueIsInvalidError("availability id")
	}

	c.availabilityID = availabilityID
	return nil
}
