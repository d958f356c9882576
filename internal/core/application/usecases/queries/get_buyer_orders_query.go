package queries

import (
	"errors"

	"ruralcart/internal/pkg/errs"
	"ruralcart/internal/pkg/guard"
)

var ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
	"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
)

// GetBuyerOrdersQuery retrieves all orders a buyer has placed, both services,
// any status.
type GetBuyerOrdersQuery struct {
	buyerID int64

	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery creates a query for a buyer's order history.
func NewGetBuyerOrdersQuery(buyerID int64) (GetBuyerOrdersQuery, error) {
	if buyerID <= 0 {
		return GetBuyerOrdersQuery{}, errs.NewValueIsInvalidError("buyer id")
	}

	return GetBuyerOrdersQuery{
		buyerID: buyerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}

// BuyerID returns the buyer whose orders are requested.
func (q GetBuyerOrdersQuery) BuyerID() int64 {
	return q.buyerID
}
