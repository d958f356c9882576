package commands

import (
	"errors"

	"ruralcart/internal/core/domain/model/order"
	"ruralcart/internal/pkg/errs"
	"ruralcart/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a driver's claim on an unaccepted order. The
// service tag states which variant the driver believes they are claiming; a
// mismatch with the stored order is rejected.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	driverID int64
	service  order.Service

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a driver to claim an order.
func NewAcceptOrderCommand(orderID int64, driverID int64, service order.Service) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
		cmd.setService(service),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c AcceptOrderCommand) OrderID() int64 {
	return c.orderID
}

// DriverID returns the claiming driver.
func (c AcceptOrderCommand) DriverID() int64 {
	return c.driverID
}

// Service returns the variant the driver expects to claim.
func (c AcceptOrderCommand) Service() order.Service {
	return c.service
}

func (c *AcceptOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setDriverID(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driver id")
	}

	c.driverID = driverID
	return nil
}

func (c *AcceptOrderCommand) setService(service order.Service) error {
	if err := service.Validate(); err != nil {
		return err
	}

	c.service = service
	return nil
}
