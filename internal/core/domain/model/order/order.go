package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"ruralcart/internal/core/domain/model/driver"
	"ruralcart/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already has a persistent identifier.
	ErrOrderIDAlreadyAssigned = errors.New("order ID is already assigned")
)

// priceTolerance bounds the float drift allowed between the stored total and
// the sum of line-item subtotals.
const priceTolerance = 1e-6

// Party is a denormalized buyer or seller identity snapshot taken at order
// creation time.
type Party struct {
	ID    int64
	Name  string
	Phone string
}

// Validate checks the snapshot carries an id and a name.
func (p Party) Validate() error {
	if p.ID <= 0 {
		return errs.NewValueIsInvalidError("party id")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errs.NewValueIsRequiredError("party name")
	}
	return nil
}

// Order is the aggregate root for both marketplace order variants.
//
// Invariants:
//   - Service discriminates the variant; necessities orders carry a seller
//     snapshot, agricultural produce orders never do
//   - Status transitions follow the shared state machine in Status
//   - Items are fixed at creation; total price equals the sum of subtotals
//   - previousDriver holds only the immediately prior custodian and is set
//     exclusively by RecordTransfer
type Order struct {
	id             int64
	service        Service
	status         Status
	buyer          Party
	seller         *Party
	location       string
	isUrgent       bool
	totalPrice     float64
	note           string
	createdAt      time.Time
	previousDriver *driver.Snapshot
	items          []Item

	isConstructed bool
}

// NewOrder creates an Unaccepted order with its line items. The total price is
// derived from the items; the identifier is assigned by the repository on Add.
//
// seller is required for necessities orders and must be nil for agricultural
// produce orders.
func NewOrder(
	service Service,
	buyer Party,
	seller *Party,
	location string,
	isUrgent bool,
	note string,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Unaccepted,
		isUrgent:      isUrgent,
		note:          note,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setService(service),
		o.setBuyer(buyer),
		o.setLocation(location),
		o.setItems(items),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if err := o.setSeller(seller); err != nil {
		return nil, err
	}

	o.totalPrice = o.ItemsTotal()
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its stored
// status, total price, and previous-driver snapshot.
func RestoreOrder(
	id int64,
	service Service,
	status Status,
	buyer Party,
	seller *Party,
	location string,
	isUrgent bool,
	totalPrice float64,
	note string,
	items []Item,
	previousDriver *driver.Snapshot,
	createdAt time.Time,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("order id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := service.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:             id,
		service:        service,
		status:         status,
		buyer:          buyer,
		seller:         seller,
		location:       location,
		isUrgent:       isUrgent,
		totalPrice:     totalPrice,
		note:           note,
		createdAt:      createdAt,
		previousDriver: previousDriver,
		items:          append([]Item(nil), items...),
		isConstructed:  true,
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate ensures the order was properly constructed and that the stored
// total price is consistent with its line items.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	if len(o.items) > 0 && math.Abs(o.totalPrice-o.ItemsTotal()) > priceTolerance {
		return errs.NewValueIsInvalidErrorWithCause("total price",
			fmt.Errorf("stored total %v does not match item sum %v", o.totalPrice, o.ItemsTotal()))
	}
	return nil
}

// AssignID sets the store-generated identifier after the initial insert.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}
	o.id = id
	return nil
}

// ID returns the order's identifier, zero before persistence.
func (o *Order) ID() int64 {
	return o.id
}

// Service returns the order's variant discriminant.
func (o *Order) Service() Service {
	return o.service
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Buyer returns the buyer snapshot.
func (o *Order) Buyer() Party {
	return o.buyer
}

// Seller returns the seller snapshot, nil for agricultural produce orders.
func (o *Order) Seller() *Party {
	return o.seller
}

// Location returns the delivery destination.
func (o *Order) Location() string {
	return o.location
}

// IsUrgent reports whether the buyer flagged the order as urgent.
func (o *Order) IsUrgent() bool {
	return o.isUrgent
}

// TotalPrice returns the stored order total.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// Note returns the buyer's free-text note.
func (o *Order) Note() string {
	return o.note
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PreviousDriver returns the immediately prior custodian, nil until the first
// transfer.
func (o *Order) PreviousDriver() *driver.Snapshot {
	return o.previousDriver
}

// Items returns the order's line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// ItemsTotal derives the order total from line-item subtotals.
func (o *Order) ItemsTotal() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

// Accept transitions the order to Accepted. Valid only from Unaccepted;
// anything else yields a ConflictError.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Complete transitions the order to its service's terminal status. Valid only
// from Accepted.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete(o.service)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// RecordTransfer stamps the outgoing custodian onto the order. Transfers do
// not change the lifecycle status, so the order must currently be Accepted.
func (o *Order) RecordTransfer(outgoing driver.Snapshot) error {
	if o.status != Accepted {
		return errs.NewConflictError(
			fmt.Sprintf("order in status %s has no custody to transfer", o.status),
		)
	}
	o.previousDriver = &outgoing
	return nil
}

func (o *Order) setService(service Service) error {
	if err := service.Validate(); err != nil {
		return err
	}
	o.service = service
	return nil
}

func (o *Order) setBuyer(buyer Party) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	o.buyer = buyer
	return nil
}

func (o *Order) setSeller(seller *Party) error {
	switch o.service {
	case Necessities:
		if seller == nil {
			return errs.NewValueIsRequiredError("seller")
		}
		if err := seller.Validate(); err != nil {
			return err
		}
		o.seller = seller
	case AgriculturalProduct:
		if seller != nil {
			return errs.NewValueIsInvalidErrorWithCause("seller",
				errors.New("agricultural produce orders have no seller"))
		}
	}
	return nil
}

func (o *Order) setLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return errs.NewValueIsRequiredError("delivery location")
	}
	o.location = location
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("creation timestamp")
	}
	o.createdAt = createdAt
	return nil
}
