package commands

import (
	"errors"

	"ruralcart/internal/core/domain/model/order"
	"ruralcart/internal/pkg/errs"
	"ruralcart/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents the custodian driver finishing a delivery.
// The service tag states which variant the driver believes they are closing; a
// mismatch with the stored order is rejected.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	driverID int64
	service  order.Service

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an accepted order.
func NewCompleteOrderCommand(orderID int64, driverID int64, service order.Service) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
		cmd.setService(service),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order being completed.
func (c CompleteOrderCommand) OrderID() int64 {
	return c.orderID
}

// DriverID returns the driver reporting completion.
func (c CompleteOrderCommand) DriverID() int64 {
	return c.driverID
}

// Service returns the variant the driver expects to close.
func (c CompleteOrderCommand) Service() order.Service {
	return c.service
}

func (c *CompleteOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setDriverID(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driver id")
	}

	c.driverID = driverID
	return nil
}

func (c *CompleteOrderCommand) setService(service order.Service) error {
	if err := service.Validate(); err != nil {
		return err
	}

	c.service = service
	return nil
}
