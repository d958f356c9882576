package commands

import (
	"errors"
	"strings"

	"ruralcart/internal/pkg/errs"
	"ruralcart/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand represents a user enrolling as a driver. One profile
// per user and per phone number.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	userID int64
	name   string
	phone  string

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a driver profile.
func NewRegisterDriverCommand(userID int64, name string, phone string) (RegisterDriverCommand, error) {
	cmd := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setPhone(phone),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// UserID returns the enrolling user's identifier.
func (c RegisterDriverCommand) UserID() int64 {
	return c.userID
}

// Name returns the driver's display name.
func (c RegisterDriverCommand) Name() string {
	return c.name
}

// Phone returns the driver's phone number.
func (c RegisterDriverCommand) Phone() string {
	return c.phone
}

func (c *RegisterDriverCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidError("user id")
	}

	c.userID = userID
	return nil
}

func (c *RegisterDriverCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("driver name")
	}

	c.name = name
	return nil
}

func (c *RegisterDriverCommand) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("driver phone")
	}

	c.phone = phone
	return nil
}
