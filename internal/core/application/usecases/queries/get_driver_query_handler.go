package queries

import (
	"context"
	"database/sql"
	"errors"

	"ruralcart/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDriverQueryHandler resolves driver directory lookups.
type GetDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverQueryHandler creates a handler for driver lookups.
func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

// Handle executes the lookup. A missing driver yields ObjectNotFound.
func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (*GetDriverQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "id = ?"
	arg := interface{}(query.DriverID())
	switch {
	case query.Phone() != "":
		where = "phone = ?"
		arg = query.Phone()
	case query.UserID() != 0:
		where = "user_id = ?"
		arg = query.UserID()
	}

	var resp GetDriverQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT id, user_id, name, phone
		FROM drivers
		WHERE `+where, arg).Row()

	err := row.Scan(&resp.ID, &resp.UserID, &resp.Name, &resp.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("driver", arg)
		}
		return nil, err
	}

	return &resp, nil
}
