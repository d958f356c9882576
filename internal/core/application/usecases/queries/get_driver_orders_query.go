package queries

import (
	"errors"
	"time"

	"ruralcart/internal/core/domain/model/order"
	"ruralcart/internal/pkg/errs"
	"ruralcart/internal/pkg/guard"
)

var ErrGetDriverOrdersQueryIsNotConstructed = errors.New(
	"GetDriverOrdersQuery must be created via NewGetDriverOrdersQuery constructor",
)

// GetDriverOrdersQuery retrieves the orders a driver has held or closed,
// projected from the custody ledger. An optional service filter narrows the
// result to one variant.
type GetDriverOrdersQuery struct {
	driverID int64
	service  *order.Service

	guard guard.ConstructorGuard
}

// NewGetDriverOrdersQuery creates a query for a driver's workload. service may
// be nil to include both variants.
func NewGetDriverOrdersQuery(driverID int64, service *order.Service) (GetDriverOrdersQuery, error) {
	if driverID <= 0 {
		return GetDriverOrdersQuery{}, errs.NewValueIsInvalidError("driver id")
	}
	if service != nil {
		if err := service.Validate(); err != nil {
			return GetDriverOrdersQuery{}, err
		}
	}

	return GetDriverOrdersQuery{
		driverID: driverID,
		service:  service,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOrdersQueryIsNotConstructed)
}

// DriverID returns the driver whose workload is requested.
func (q GetDriverOrdersQuery) DriverID() int64 {
	return q.driverID
}

// Service returns the optional variant filter, nil for both.
func (q GetDriverOrdersQuery) Service() *order.Service {
	return q.service
}

// GetDriverOrdersQueryResponse is one entry of a driver's workload: the order
// view plus the ledger facts that tie the driver to it.
type GetDriverOrdersQueryResponse struct {
	OrderView
	Action   string    `json:"action"`
	ClaimedAt time.Time `json:"claimed_at"`
}
