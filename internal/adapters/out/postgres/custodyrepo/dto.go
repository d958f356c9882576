package custodyrepo

import (
	"time"

	"ruralcart/internal/core/domain/model/custody"
	"ruralcart/internal/core/domain/model/driver"
	"ruralcart/internal/core/domain/model/order"
)

// RecordDTO maps a custody-ledger record to the driver_orders table. The table
// is append-only except for the in-place rewrite of the active claim during a
// transfer.
type RecordDTO struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	DriverID            int64  `gorm:"index"`
	OrderID             int64  `gorm:"index:idx_driver_orders_order_action"`
	Action              string `gorm:"index:idx_driver_orders_order_action"`
	Service             string
	Timestamp           time.Time
	PreviousDriverID    *int64
	PreviousDriverName  *string
	PreviousDriverPhone *string
}

// TableName overrides the default GORM table name.
func (RecordDTO) TableName() string {
	return "driver_orders"
}

// DomainToDTO converts a ledger record to its database representation.
func DomainToDTO(record *custody.Record) RecordDTO {
	dto := RecordDTO{
		ID:        record.ID(),
		DriverID:  record.DriverID(),
		OrderID:   record.OrderID(),
		Action:    record.Action().String(),
		Service:   string(record.Service()),
		Timestamp: record.Timestamp(),
	}

	if prev := record.Previous(); prev != nil {
		dto.PreviousDriverID = &prev.ID
		dto.PreviousDriverName = &prev.Name
		dto.PreviousDriverPhone = &prev.Phone
	}

	return dto
}

// DtoToDomain reconstructs a ledger record from its database representation.
func DtoToDomain(dto RecordDTO) (*custody.Record, error) {
	var previous *driver.Snapshot
	if dto.PreviousDriverID != nil {
		previous = &driver.Snapshot{ID: *dto.PreviousDriverID}
		if dto.PreviousDriverName != nil {
			previous.Name = *dto.PreviousDriverName
		}
		if dto.PreviousDriverPhone != nil {
			previous.Phone = *dto.PreviousDriverPhone
		}
	}

	return custody.RestoreRecord(
		dto.ID,
		dto.DriverID,
		dto.OrderID,
		custody.Action(dto.Action),
		order.Service(dto.Service),
		dto.Timestamp,
		previous,
	)
}
