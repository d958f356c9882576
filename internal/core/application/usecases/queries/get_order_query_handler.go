package queries

import (
	"context"

	"ruralcart/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler serves one order together with its custody history in
// ledger append order.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. A missing order yields ObjectNotFound.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views, err := fetchOrderViews(ctx, h.db, "id = ?", query.OrderID())
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, errs.NewObjectNotFoundError("order id", query.OrderID())
	}

	history, err := h.fetchHistory(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	return &GetOrderQueryResponse{
		OrderView: views[0],
		History:   history,
	}, nil
}

func (h GetOrderQueryHandler) fetchHistory(ctx context.Context, orderID int64) ([]CustodyEntryView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			driver_id,
			action,
			timestamp,
			previous_driver_id,
			previous_driver_name,
			previous_driver_phone
		FROM driver_orders
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]CustodyEntryView, 0)
	for rows.Next() {
		var entry CustodyEntryView
		var prevID *int64
		var prevName, prevPhone *string

		err = rows.Scan(
			&entry.DriverID,
			&entry.Action,
			&entry.Timestamp,
			&prevID,
			&prevName,
			&prevPhone,
		)
		if err != nil {
			return nil, err
		}

		entry.PreviousDriver = partyViewFromColumns(prevID, prevName, prevPhone)
		history = append(history, entry)
	}

	return history, rows.Err()
}
