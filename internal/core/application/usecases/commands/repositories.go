// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"shiptracker/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across the shipment store and the
// history ledger.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// HistoryRepoFactory provides access to the history ledger within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	// Used by commands that never touch the ledger (field updates, deletes).
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// UoW manages transactions spanning the shipment store and the ledger.
	// Used by the composite operations: creation (shipment row plus creation
	// entry) and status change (status update plus ledger append).
	UoW interface {
		TxManager
		ShipmentRepoFactory
		HistoryRepoFactory
	}

	// UoWFactory creates new unit of work instances for composite operations.
	UoWFactory interface {
		Create() UoW
	}
)
