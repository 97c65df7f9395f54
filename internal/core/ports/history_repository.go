package ports

import (
	"context"

	"shiptracker/internal/core/domain/model/history"
)

// HistoryRepository defines the persistence contract for the append-only
// status ledger. Entries are only ever inserted and read; there is no update
// or delete operation on purpose.
type HistoryRepository interface {
	// Append persists a new ledger entry and assigns its store-generated
	// identifier to the entry.
	Append(ctx context.Context, entry *history.Entry) error

	// ListByOrder retrieves all entries for a shipment ordered by changed_at
	// descending. Returns an empty slice, not an error, when none exist.
	ListByOrder(ctx context.Context, orderID int64) ([]*history.Entry, error)
}
