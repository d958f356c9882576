package queries

import (
	"errors"
	"time"

	"ruralcart/internal/pkg/errs"
	"ruralcart/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its full custody history.
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidError("order id")
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// CustodyEntryView is one row of an order's custody history.
type CustodyEntryView struct {
	DriverID       int64      `json:"driver_id"`
	Action         string     `json:"action"`
	Timestamp      time.Time  `json:"timestamp"`
	PreviousDriver *PartyView `json:"previous_driver,omitempty"`
}

// GetOrderQueryResponse is a single order with its audit trail.
type GetOrderQueryResponse struct {
	OrderView
	History []CustodyEntryView `json:"history"`
}
