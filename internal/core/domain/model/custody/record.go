package custody

import (
	"errors"
	"fmt"
	"time"

	"ruralcart/internal/core/domain/model/driver"
	"ruralcart/internal/core/domain/model/order"
	"ruralcart/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when a Record instance was not created
// through NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

// Action classifies a ledger record.
type Action string

const (
	// ActionAccepted marks the record that carries the active claim.
	ActionAccepted Action = "accepted"

	// ActionTransferred marks records describing a custody hand-over.
	ActionTransferred Action = "transferred"

	// ActionCompleted closes the active claim on an order.
	ActionCompleted Action = "completed"
)

// Validate checks that the Action is one of the known ledger actions.
func (a Action) Validate() error {
	switch a {
	case ActionAccepted, ActionTransferred, ActionCompleted:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q is not a known ledger action", string(a)))
	}
}

func (a Action) String() string {
	return string(a)
}

// Record is one row of the driver-order custody ledger.
type Record struct {
	id        int64
	driverID  int64
	orderID   int64
	action    Action
	service   order.Service
	timestamp time.Time
	previous  *driver.Snapshot

	isConstructed bool
}

// NewRecord creates a ledger record pending persistence. previous carries the
// prior custodian's snapshot when the record results from a transfer chain.
func NewRecord(
	driverID int64,
	orderID int64,
	action Action,
	service order.Service,
	timestamp time.Time,
	previous *driver.Snapshot,
) (*Record, error) {
	if driverID <= 0 {
		return nil, errs.NewValueIsInvalidError("driver id")
	}
	if orderID <= 0 {
		return nil, errs.NewValueIsInvalidError("order id")
	}
	if err := action.Validate(); err != nil {
		return nil, err
	}
	if err := service.Validate(); err != nil {
		return nil, err
	}
	if timestamp.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}

	return &Record{
		driverID:      driverID,
		orderID:       orderID,
		action:        action,
		service:       service,
		timestamp:     timestamp,
		previous:      previous,
		isConstructed: true,
	}, nil
}

// RestoreRecord reconstructs a ledger record from persistence.
func RestoreRecord(
	id int64,
	driverID int64,
	orderID int64,
	action Action,
	service order.Service,
	timestamp time.Time,
	previous *driver.Snapshot,
) (*Record, error) {
	r, err := NewRecord(driverID, orderID, action, service, timestamp, previous)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("record id")
	}
	r.id = id
	return r, nil
}

// Validate ensures the Record was created through a constructor.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// AssignID sets the store-generated identifier after the initial insert.
func (r *Record) AssignID(id int64) error {
	if r.id != 0 {
		return errs.NewValueIsInvalidError("record id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("record id")
	}
	r.id = id
	return nil
}

// ID returns the record's identifier, zero before persistence.
func (r *Record) ID() int64 {
	return r.id
}

// DriverID returns the driver holding or having held this claim.
func (r *Record) DriverID() int64 {
	return r.driverID
}

// OrderID returns the order this record belongs to.
func (r *Record) OrderID() int64 {
	return r.orderID
}

// Action returns the record's ledger action.
func (r *Record) Action() Action {
	return r.action
}

// Service returns the order variant this record belongs to. It always matches
// the order's own service tag.
func (r *Record) Service() order.Service {
	return r.service
}

// Timestamp returns when the record was written.
func (r *Record) Timestamp() time.Time {
	return r.timestamp
}

// Previous returns the prior custodian's snapshot, nil when the claim never
// changed hands.
func (r *Record) Previous() *driver.Snapshot {
	return r.previous
}

// Reassign moves the active claim from the outgoing driver to the incoming
// one, stamping the outgoing identity into the previous-driver snapshot.
//
// Preconditions:
//   - the record must carry the active claim (action accepted)
//   - to must be a different driver than from
//   - from must be the record's current driver
func (r *Record) Reassign(to driver.Snapshot, from driver.Snapshot) error {
	if r.action != ActionAccepted {
		return errs.NewConflictError(
			fmt.Sprintf("record with action %s carries no active claim", r.action),
		)
	}
	if to.ID == from.ID {
		return errs.NewValueIsInvalidErrorWithCause("new driver",
			errors.New("cannot transfer an order to its current driver"))
	}
	if from.ID != r.driverID {
		return errs.NewConflictError("driver does not hold this order")
	}

	r.driverID = to.ID
	r.previous = &from
	return nil
}
