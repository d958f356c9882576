package order

import (
	"errors"
	"fmt"
	"strings"

	"ruralcart/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line-item snapshot fixed at order time. Name, price, and quantity
// are copied from the catalog when the order is created and never change
// afterwards, so the order remains a faithful record even if the catalog does.
type Item struct {
	itemID   string
	name     string
	price    float64
	quantity int
	image    string
	pickup   string
	drop     string
	category string

	isConstructed bool
}

// NewItem creates a validated line-item snapshot.
//
// pickup and drop are free-text sub-locations: where the driver collects the
// item and where it is handed over. Either may be empty for necessities items
// that share the order's delivery location.
func NewItem(itemID, name string, price float64, quantity int, image, pickup, drop, category string) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setItemID(itemID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.image = image
	item.pickup = pickup
	item.drop = drop
	item.category = category
	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ItemID returns the catalog identifier of the snapshotted item.
func (i Item) ItemID() string {
	return i.itemID
}

// Name returns the item's name at order time.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price at order time.
func (i Item) Price() float64 {
	return i.price
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Image returns the item's image reference.
func (i Item) Image() string {
	return i.image
}

// Pickup returns where the driver collects the item.
func (i Item) Pickup() string {
	return i.pickup
}

// Drop returns where the item is handed over.
func (i Item) Drop() string {
	return i.drop
}

// Category returns the item's catalog category.
func (i Item) Category() string {
	return i.category
}

// Subtotal returns price times quantity.
func (i Item) Subtotal() float64 {
	return i.price * float64(i.quantity)
}

func (i *Item) setItemID(itemID string) error {
	if strings.TrimSpace(itemID) == "" {
		return errs.NewValueIsRequiredError("item id")
	}
	i.itemID = itemID
	return nil
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item price",
			fmt.Errorf("%v is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
