package commands

import (
	"errors"

	"ruralcart/internal/core/domain/model/order"
	"ruralcart/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
)

// ItemInput carries one line item of an order-creation request. Values are
// snapshotted into the order as-is; deep validation happens in the domain
// constructor.
type ItemInput struct {
	ItemID   string
	Name     string
	Price    float64
	Quantity int
	Image    string
	Pickup   string
	Drop     string
	Category string
}

// CreateOrderCommand represents a request to place a new marketplace order of
// either service variant. Necessities orders carry a seller snapshot;
// agricultural produce orders must not.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	service  order.Service
	buyer    order.Party
	seller   *order.Party
	location string
	isUrgent bool
	note     string
	items    []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the service tag and that at least one item is present; the rest of
// the validation belongs to the Order constructor.
func NewCreateOrderCommand(
	service order.Service,
	buyer order.Party,
	seller *order.Party,
	location string,
	isUrgent bool,
	note string,
	items []ItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		buyer:    buyer,
		seller:   seller,
		location: location,
		isUrgent: isUrgent,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setService(service),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Service returns the order variant being placed.
func (c CreateOrderCommand) Service() order.Service {
	return c.service
}

// Buyer returns the buyer identity snapshot.
func (c CreateOrderCommand) Buyer() order.Party {
	return c.buyer
}

// Seller returns the seller snapshot, nil for agricultural produce orders.
func (c CreateOrderCommand) Seller() *order.Party {
	return c.seller
}

// Location returns the delivery destination.
func (c CreateOrderCommand) Location() string {
	return c.location
}

// IsUrgent reports whether the buyer flagged the order as urgent.
func (c CreateOrderCommand) IsUrgent() bool {
	return c.isUrgent
}

// Note returns the buyer's free-text note.
func (c CreateOrderCommand) Note() string {
	return c.note
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []ItemInput {
	return append([]ItemInput(nil), c.items...)
}

func (c *CreateOrderCommand) setService(service order.Service) error {
	if err := service.Validate(); err != nil {
		return err
	}

	c.service = service
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	c.items = append([]ItemInput(nil), items...)
	return nil
}
