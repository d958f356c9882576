package queries

import (
	"errors"

	"ruralcart/internal/pkg/errs"
	"ruralcart/internal/pkg/guard"
)

var ErrGetSellerOrdersQueryIsNotConstructed = errors.New(
	"GetSellerOrdersQuery must be created via NewGetSellerOrdersQuery constructor",
)

// GetSellerOrdersQuery retrieves the orders addressed to a seller. Only
// necessities orders carry a seller, so the result never contains agricultural
// produce orders.
type GetSellerOrdersQuery struct {
	sellerID int64

	guard guard.ConstructorGuard
}

// NewGetSellerOrdersQuery creates a query for a seller's incoming orders.
func NewGetSellerOrdersQuery(sellerID int64) (GetSellerOrdersQuery, error) {
	if sellerID <= 0 {
		return GetSellerOrdersQuery{}, errs.NewValueIsInvalidError("seller id")
	}

	return GetSellerOrdersQuery{
		sellerID: sellerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSellerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerOrdersQueryIsNotConstructed)
}

// SellerID returns the seller whose orders are requested.
func (q GetSellerOrdersQuery) SellerID() int64 {
	return q.sellerID
}
