package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDriverOrdersQueryHandler serves a driver's workload by joining the
// custody ledger to the order projection. Active claims and closed deliveries
// both appear; the ledger action tells them apart.
type GetDriverOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverOrdersQueryHandler creates a handler for driver workload queries.
func NewGetDriverOrdersQueryHandler(db *gorm.DB) GetDriverOrdersQueryHandler {
	return GetDriverOrdersQueryHandler{db: db}
}

// Handle executes the query, newest ledger entries first.
func (h GetDriverOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDriverOrdersQuery,
) ([]GetDriverOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.service,
			o.status,
			o.buyer_id,
			o.buyer_name,
			o.buyer_phone,
			o.seller_id,
			o.seller_name,
			o.seller_phone,
			o.location,
			o.is_urgent,
			o.total_price,
			o.note,
			o.previous_driver_id,
			o.previous_driver_name,
			o.previous_driver_phone,
			o.created_at,
			c.action,
			c.timestamp
		FROM driver_orders c
		JOIN orders o ON o.id = c.order_id
		WHERE c.driver_id = ?`
	args := []interface{}{query.DriverID()}

	if service := query.Service(); service != nil {
		sql += ` AND o.service = ?`
		args = append(args, service.String())
	}
	sql += ` ORDER BY c.timestamp DESC, c.id DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]GetDriverOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetDriverOrdersQueryResponse
		var status int
		var sellerID, prevID *int64
		var sellerName, sellerPhone, prevName, prevPhone *string

		err = rows.Scan(
			&resp.ID,
			&resp.Service,
			&status,
			&resp.Buyer.ID,
			&resp.Buyer.Name,
			&resp.Buyer.Phone,
			&sellerID,
			&sellerName,
			&sellerPhone,
			&resp.Location,
			&resp.IsUrgent,
			&resp.TotalPrice,
			&resp.Note,
			&prevID,
			&prevName,
			&prevPhone,
			&resp.CreatedAt,
			&resp.Action,
			&resp.ClaimedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = statusName(status)
		resp.Seller = partyViewFromColumns(sellerID, sellerName, sellerPhone)
		resp.PreviousDriver = partyViewFromColumns(prevID, prevName, prevPhone)
		resp.Items = make([]ItemView, 0)
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachDriverOrderItems(ctx, h.db, responses); err != nil {
		return nil, err
	}

	return responses, nil
}

func attachDriverOrderItems(ctx context.Context, db *gorm.DB, responses []GetDriverOrdersQueryResponse) error {
	if len(responses) == 0 {
		return nil
	}

	views := make([]OrderView, len(responses))
	for i := range responses {
		views[i] = responses[i].OrderView
	}
	if err := attachItems(ctx, db, views); err != nil {
		return err
	}
	for i := range responses {
		responses[i].Items = views[i].Items
	}
	return nil
}
