package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Composite operations (create shipment plus its creation ledger entry,
// status update plus ledger append) run inside one unit of work so both
// writes commit or neither does.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository bound to the current
	// transaction started by Begin().
	ShipmentRepository() ShipmentRepository

	// HistoryRepository returns a HistoryRepository bound to the current
	// transaction started by Begin().
	HistoryRepository() HistoryRepository
}
