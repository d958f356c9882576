package queries

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetAvailabilityQueryHandler serves the availability board: published
// delivery windows joined with the declaring driver's directory entry.
type GetAvailabilityQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailabilityQueryHandler creates a handler for availability queries.
func NewGetAvailabilityQueryHandler(db *gorm.DB) GetAvailabilityQueryHandler {
	return GetAvailabilityQueryHandler{db: db}
}

// Handle executes the query, soonest windows first.
func (h GetAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query GetAvailabilityQuery,
) ([]GetAvailabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			w.id,
			w.driver_id,
			d.name,
			d.phone,
			w.date,
			w.start_time,
			w.locations
		FROM driver_time w
		JOIN drivers d ON d.id = w.driver_id`
	args := make([]interface{}, 0, 1)

	if driverID := query.DriverID(); driverID != nil {
		sql += ` WHERE w.driver_id = ?`
		args = append(args, *driverID)
	}
	sql += ` ORDER BY w.date, w.start_time, w.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]GetAvailabilityQueryResponse, 0)
	for rows.Next() {
		var resp GetAvailabilityQueryResponse
		var locations pq.StringArray

		err = rows.Scan(
			&resp.ID,
			&resp.DriverID,
			&resp.DriverName,
			&resp.DriverPhone,
			&resp.Date,
			&resp.StartTime,
			&locations,
		)
		if err != nil {
			return nil, err
		}

		resp.Locations = []string(locations)
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
