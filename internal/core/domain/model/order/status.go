package order

import (
	"fmt"

	"ruralcart/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a one-way
// state machine shared by both order variants:
//
//	Unaccepted ──> Accepted ──> Completed   (necessities)
//	                       └──> Delivered   (agricultural produce)
//
// Transitions never skip a state and terminal states allow no further
// transitions. Invalid transition attempts return a ConflictError so callers
// can distinguish precondition violations from missing objects.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Unaccepted is the initial status: no driver holds a claim on the order.
	Unaccepted

	// Accepted indicates exactly one driver holds the active claim.
	Accepted

	// Completed is the terminal status of a necessities order.
	Completed

	// Delivered is the terminal status of an agricultural produce order.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Unaccepted: "Unaccepted",
		Accepted:   "Accepted",
		Completed:  "Completed",
		Delivered:  "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Delivered
}

// Accept transitions the status to Accepted.
//
// The only valid source state is Unaccepted; any other state yields a
// ConflictError ("already accepted" once a claim exists).
func (s Status) Accept() (Status, error) {
	if s != Unaccepted {
		return 0, errs.NewConflictError(
			fmt.Sprintf("order in status %s is already accepted or closed", s),
		)
	}
	return Accepted, nil
}

// Complete transitions the status to the terminal state of the given service:
// Completed for necessities, Delivered for agricultural produce.
//
// The only valid source state is Accepted.
func (s Status) Complete(service Service) (Status, error) {
	if err := service.Validate(); err != nil {
		return 0, err
	}
	if s != Accepted {
		return 0, errs.NewConflictError(
			fmt.Sprintf("order in status %s cannot be completed", s),
		)
	}
	if service == AgriculturalProduct {
		return Delivered, nil
	}
	return Completed, nil
}
