// Package queries contains read-side operations of the CQRS split. Handlers
// read the store directly with raw SQL and return flat view structs shaped for
// one caller role; they never load aggregates or take locks.
package queries

import (
	"context"
	"time"

	"ruralcart/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// PartyView is a denormalized identity in a read model: a buyer, a seller, or
// a driver.
type PartyView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ItemView is one order line item in a read model.
type ItemView struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
	Image    string  `json:"image,omitempty"`
	Pickup   string  `json:"pickup,omitempty"`
	Drop     string  `json:"drop,omitempty"`
	Category string  `json:"category,omitempty"`
}

// OrderView is the shared order read model. Role-scoped queries return it
// filtered to the caller's orders.
type OrderView struct {
	ID             int64      `json:"id"`
	Service        string     `json:"service"`
	Status         string     `json:"status"`
	Buyer          PartyView  `json:"buyer"`
	Seller         *PartyView `json:"seller,omitempty"`
	Location       string     `json:"location"`
	IsUrgent       bool       `json:"is_urgent"`
	TotalPrice     float64    `json:"total_price"`
	Note           string     `json:"note,omitempty"`
	PreviousDriver *PartyView `json:"previous_driver,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	Items          []ItemView `json:"items"`
}

const orderViewColumns = `
	id,
	service,
	status,
	buyer_id,
	buyer_name,
	buyer_phone,
	seller_id,
	seller_name,
	seller_phone,
	location,
	is_urgent,
	total_price,
	note,
	previous_driver_id,
	previous_driver_name,
	previous_driver_phone,
	created_at`

// fetchOrderViews runs the shared order projection with the given WHERE clause
// and attaches line items in a second query.
func fetchOrderViews(ctx context.Context, db *gorm.DB, where string, args ...interface{}) ([]OrderView, error) {
	views := make([]OrderView, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE `+where+`
		ORDER BY created_at DESC, id DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachItems(ctx, db, views); err != nil {
		return nil, err
	}

	return views, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrderView(row rowScanner) (OrderView, error) {
	var view OrderView
	var status int
	var sellerID, prevID *int64
	var sellerName, sellerPhone, prevName, prevPhone *string

	err := row.Scan(
		&view.ID,
		&view.Service,
		&status,
		&view.Buyer.ID,
		&view.Buyer.Name,
		&view.Buyer.Phone,
		&sellerID,
		&sellerName,
		&sellerPhone,
		&view.Location,
		&view.IsUrgent,
		&view.TotalPrice,
		&view.Note,
		&prevID,
		&prevName,
		&prevPhone,
		&view.CreatedAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	view.Status = statusName(status)
	view.Seller = partyViewFromColumns(sellerID, sellerName, sellerPhone)
	view.PreviousDriver = partyViewFromColumns(prevID, prevName, prevPhone)
	view.Items = make([]ItemView, 0)
	return view, nil
}

func statusName(status int) string {
	return order.Status(status).String()
}

func partyViewFromColumns(id *int64, name, phone *string) *PartyView {
	if id == nil {
		return nil
	}

	view := &PartyView{ID: *id}
	if name != nil {
		view.Name = *name
	}
	if phone != nil {
		view.Phone = *phone
	}
	return view
}

func attachItems(ctx context.Context, db *gorm.DB, views []OrderView) error {
	if len(views) == 0 {
		return nil
	}

	// The driver projection can return the same order under several ledger
	// rows; items attach to every occurrence.
	index := make(map[int64][]int, len(views))
	ids := make([]int64, 0, len(views))
	for i, view := range views {
		if _, seen := index[view.ID]; !seen {
			ids = append(ids, view.ID)
		}
		index[view.ID] = append(index[view.ID], i)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			item_id,
			name,
			price,
			quantity,
			image,
			pickup_location,
			drop_location,
			category
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int64
		var item ItemView

		err = rows.Scan(
			&orderID,
			&item.ItemID,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&item.Image,
			&item.Pickup,
			&item.Drop,
			&item.Category,
		)
		if err != nil {
			return err
		}

		item.Subtotal = item.Price * float64(item.Quantity)
		for _, i := range index[orderID] {
			views[i].Items = append(views[i].Items, item)
		}
	}

	return rows.Err()
}
