package repository

import "context"

// CompletedOrderRepository persists the Completed-Locally set across
// sessions. It is a best-effort guard against double submission and is
// never authoritative over the order store.
type CompletedOrderRepository interface {
	// Load returns every recorded order id. Called once at startup.
	Load(ctx context.Context) ([]int64, error)
	// Add records finalized order ids with the status they ended in.
	Add(ctx context.Context, status string, orderIDs ...int64) error
}
