package commands

import (
	"context"
	"time"

	"ruralcart/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// New orders start in Unaccepted status with the total price derived from the
// line items.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the order placement command and returns the identifier
// assigned by the store.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, err := order.NewItem(
			input.ItemID,
			input.Name,
			input.Price,
			input.Quantity,
			input.Image,
			input.Pickup,
			input.Drop,
			input.Category,
		)
		if err != nil {
			return 0, err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.Service(),
		cmd.Buyer(),
		cmd.Seller(),
		cmd.Location(),
		cmd.IsUrgent(),
		cmd.Note(),
		items,
		h.now(),
	)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}
