package driverrepo

import (
	"time"

	"ruralcart/internal/core/domain/model/driver"

	"github.com/lib/pq"
)

// DriverDTO maps the Driver aggregate to the drivers table. The unique indexes
// back the one-profile-per-user and one-profile-per-phone rules.
type DriverDTO struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	UserID int64  `gorm:"uniqueIndex"`
	Name   string
	Phone  string `gorm:"uniqueIndex"`
}

// TableName overrides the default GORM table name.
func (DriverDTO) TableName() string {
	return "drivers"
}

// AvailabilityDTO maps an availability window to the driver_time table.
// Locations is a PostgreSQL text[] column.
type AvailabilityDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	DriverID  int64 `gorm:"index"`
	Date      time.Time
	StartTime string
	Locations pq.StringArray `gorm:"type:text[]"`
}

// TableName overrides the default GORM table name.
func (AvailabilityDTO) TableName() string {
	return "driver_time"
}

// DomainToDTO converts a Driver aggregate to its database representation.
func DomainToDTO(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:     aggregate.ID(),
		UserID: aggregate.UserID(),
		Name:   aggregate.Name(),
		Phone:  aggregate.Phone(),
	}
}

// DtoToDomain reconstructs a Driver aggregate from its database representation.
func DtoToDomain(dto DriverDTO) (*driver.Driver, error) {
	return driver.RestoreDriver(dto.ID, dto.UserID, dto.Name, dto.Phone)
}

// AvailabilityToDTO converts an availability window to its database
// representation.
func AvailabilityToDTO(window *driver.Availability) AvailabilityDTO {
	return AvailabilityDTO{
		ID:        window.ID(),
		DriverID:  window.DriverID(),
		Date:      window.Date(),
		StartTime: window.StartTime(),
		Locations: pq.StringArray(window.Locations()),
	}
}

// AvailabilityToDomain reconstructs an availability window from its database
// representation.
func AvailabilityToDomain(dto AvailabilityDTO) (*driver.Availability, error) {
	return driver.RestoreAvailability(dto.ID, dto.DriverID, dto.Date, dto.StartTime, []string(dto.Locations))
}
