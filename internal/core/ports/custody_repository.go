package ports

import (
	"context"

	"ruralcart/internal/core/domain/model/custody"
)

// CustodyRepository defines the persistence contract for the append-only
// driver-order ledger. Records are appended and, for the active claim only,
// rewritten in place during a transfer; they are never deleted.
type CustodyRepository interface {
	// Append persists a new ledger record and assigns the generated identifier
	// back to the record.
	Append(ctx context.Context, record *custody.Record) error

	// Update rewrites the active claim after a transfer.
	Update(ctx context.Context, record *custody.Record) error

	// GetActiveForUpdate retrieves the order's active claim (the "accepted"
	// record) while holding an exclusive row lock for the remainder of the
	// surrounding transaction. Returns ObjectNotFound when no active claim
	// exists; lock contention surfaces as a ConflictError.
	GetActiveForUpdate(ctx context.Context, orderID int64) (*custody.Record, error)

	// History retrieves the full ledger of an order in append order.
	History(ctx context.Context, orderID int64) ([]*custody.Record, error)
}
