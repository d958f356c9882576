package driver

import (
	"errors"
	"strings"

	"ruralcart/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not created
// through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

// ErrDriverIDAlreadyAssigned is returned when AssignID is called on a driver
// that already has a persistent identifier.
var ErrDriverIDAlreadyAssigned = errors.New("driver ID is already assigned")

// Snapshot is a denormalized copy of a driver's identity, embedded into orders
// and custody records so the audit trail survives later driver changes.
type Snapshot struct {
	ID    int64
	Name  string
	Phone string
}

// Driver represents a registered courier.
//
// Invariants:
//   - Owning user id must be positive
//   - Display name and phone are required
//   - Phone is unique across drivers (enforced by the store)
type Driver struct {
	id     int64
	userID int64
	name   string
	phone  string

	isConstructed bool
}

// NewDriver creates a Driver pending persistence. The identifier is assigned by
// the repository on Add.
func NewDriver(userID int64, name string, phone string) (*Driver, error) {
	d := &Driver{isConstructed: true}

	if err := errors.Join(
		d.setUserID(userID),
		d.setName(name),
		d.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistence.
func RestoreDriver(id int64, userID int64, name string, phone string) (*Driver, error) {
	d, err := NewDriver(userID, name, phone)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("driver id")
	}
	d.id = id
	return d, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// AssignID sets the store-generated identifier after the initial insert.
func (d *Driver) AssignID(id int64) error {
	if d.id != 0 {
		return ErrDriverIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("driver id")
	}
	d.id = id
	return nil
}

// ID returns the driver's identifier, zero before persistence.
func (d *Driver) ID() int64 {
	return d.id
}

// UserID returns the id of the user account that owns this driver profile.
func (d *Driver) UserID() int64 {
	return d.userID
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// Snapshot captures the driver's identity for embedding into custody records.
func (d *Driver) Snapshot() Snapshot {
	return Snapshot{ID: d.id, Name: d.name, Phone: d.phone}
}

func (d *Driver) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidError("user id")
	}
	d.userID = userID
	return nil
}

func (d *Driver) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("driver name")
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("driver phone")
	}
	d.phone = phone
	return nil
}
