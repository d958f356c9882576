package queries

import (
	"errors"
	"strings"

	"ruralcart/internal/pkg/errs"
	"ruralcart/internal/pkg/guard"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

// GetDriverQuery resolves a driver profile by identifier, by owning user, or
// by phone number. Exactly one selector must be set; phone lookup backs the
// transfer flow's directory check.
type GetDriverQuery struct {
	driverID int64
	userID   int64
	phone    string

	guard guard.ConstructorGuard
}

// NewGetDriverQueryByID creates a query selecting a driver by identifier.
func NewGetDriverQueryByID(driverID int64) (GetDriverQuery, error) {
	if driverID <= 0 {
		return GetDriverQuery{}, errs.NewValueIsInvalidError("driver id")
	}

	return GetDriverQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewGetDriverQueryByUserID creates a query selecting the driver profile owned
// by the given user.
func NewGetDriverQueryByUserID(userID int64) (GetDriverQuery, error) {
	if userID <= 0 {
		return GetDriverQuery{}, errs.NewValueIsInvalidError("user id")
	}

	return GetDriverQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGetDriverQueryByPhone creates a query selecting a driver by phone number.
func NewGetDriverQueryByPhone(phone string) (GetDriverQuery, error) {
	if strings.TrimSpace(phone) == "" {
		return GetDriverQuery{}, errs.NewValueIsRequiredError("driver phone")
	}

	return GetDriverQuery{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

// DriverID returns the identifier selector, zero when another selector is set.
func (q GetDriverQuery) DriverID() int64 {
	return q.driverID
}

// UserID returns the owning-user selector, zero when another selector is set.
func (q GetDriverQuery) UserID() int64 {
	return q.userID
}

// Phone returns the phone selector, empty when another selector is set.
func (q GetDriverQuery) Phone() string {
	return q.phone
}

// GetDriverQueryResponse is the driver directory read model.
type GetDriverQueryResponse struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
}
