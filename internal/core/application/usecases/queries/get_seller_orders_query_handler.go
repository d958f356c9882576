package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetSellerOrdersQueryHandler serves the seller's incoming orders, newest
// first, with line items.
type GetSellerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSellerOrdersQueryHandler creates a handler for seller order queries.
func NewGetSellerOrdersQueryHandler(db *gorm.DB) GetSellerOrdersQueryHandler {
	return GetSellerOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetSellerOrdersQueryHandler) Handle(ctx context.Context, query GetSellerOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return fetchOrderViews(ctx, h.db, "seller_id = ?", query.SellerID())
}
