package ports

import (
	"context"

	"ruralcart/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Lifecycle mutations always start from GetForUpdate so that status guards are
// evaluated against the row's current state under an exclusive lock; plain Get
// serves read paths that tolerate concurrent mutation.
type OrderRepository interface {
	// Add persists a new order together with its line items in one insert and
	// assigns the store-generated identifier back to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists lifecycle changes (status, previous-driver snapshot) of an
	// existing order. Line items are immutable and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate retrieves an order while holding an exclusive row lock for
	// the remainder of the surrounding transaction. The lock is requested with
	// NOWAIT; contention surfaces as a ConflictError so callers retry instead
	// of queueing.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)

	// GetByBuyer retrieves all orders placed by the given buyer, both services.
	GetByBuyer(ctx context.Context, buyerID int64) ([]*order.Order, error)

	// GetBySeller retrieves all necessities orders addressed to the given seller.
	GetBySeller(ctx context.Context, sellerID int64) ([]*order.Order, error)
}
