package commands

import (
	"errors"
	"strings"

	"ruralcart/internal/pkg/errs"
	"ruralcart/internal/pkg/guard"
)

var ErrTransferOrderCommandIsNotConstructed = errors.New(
	"TransferOrderCommand must be created via NewTransferOrderCommand constructor",
)

// TransferOrderCommand represents a custody hand-over request: the current
// driver passes an accepted order to a colleague identified by phone number.
type TransferOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      int64
	fromDriverID int64
	toPhone      string

	guard guard.ConstructorGuard
}

// NewTransferOrderCommand creates a command to transfer custody of an order.
func NewTransferOrderCommand(orderID int64, fromDriverID int64, toPhone string) (TransferOrderCommand, error) {
	cmd := TransferOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setFromDriverID(fromDriverID),
		cmd.setToPhone(toPhone),
	); err != nil {
		return TransferOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransferOrderCommandIsNotConstructed)
}

// OrderID returns the order whose custody changes hands.
func (c TransferOrderCommand) OrderID() int64 {
	return c.orderID
}

// FromDriverID returns the driver initiating the transfer.
func (c TransferOrderCommand) FromDriverID() int64 {
	return c.fromDriverID
}

// ToPhone returns the phone number identifying the receiving driver.
func (c TransferOrderCommand) ToPhone() string {
	return c.toPhone
}

func (c *TransferOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *TransferOrderCommand) setFromDriverID(fromDriverID int64) error {
	if fromDriverID <= 0 {
		return errs.NewValueIsInvalidError("from driver id")
	}

	c.fromDriverID = fromDriverID
	return nil
}

func (c *TransferOrderCommand) setToPhone(toPhone string) error {
	if strings.TrimSpace(toPhone) == "" {
		return errs.NewValueIsRequiredError("receiving driver phone")
	}

	c.toPhone = toPhone
	return nil
}
