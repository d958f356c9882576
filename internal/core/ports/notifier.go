package ports

import "context"

// Notifier delivers outbound messages to users through an external messaging
// collaborator.
//
// Delivery is strictly best-effort: implementations report success as a bool,
// never an error, and callers invoke them only after the business transaction
// has committed. A failed send is logged by the implementation and must not
// influence transaction outcome.
type Notifier interface {
	SendMessageToUser(ctx context.Context, userID int64, text string) bool
}
