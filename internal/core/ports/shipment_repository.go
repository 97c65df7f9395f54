// Package ports defines repository interfaces for the shipment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"shiptracker/internal/core/domain/model/shipment"
)

// ShipmentPatch carries a partial update for a shipment. Only non-nil fields
// are applied. The set of fields IS the allow-list: the current status is
// deliberately absent, so a generic update can never bypass the audited
// status-change path.
type ShipmentPatch struct {
	CustomerName *string
	Phone        *string
	Address      *string
	Origin       *string
	Destination  *string
	Metadata     *shipment.Metadata
}

// IsEmpty reports whether the patch carries no changes.
func (p ShipmentPatch) IsEmpty() bool {
	return p.CustomerName == nil &&
		p.Phone == nil &&
		p.Address == nil &&
		p.Origin == nil &&
		p.Destination == nil &&
		p.Metadata == nil
}

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment and assigns its store-generated identifier
	// to the aggregate.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists the full current state of an existing shipment.
	// Returns ObjectNotFoundError when no row matches the aggregate's id.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Patch applies a partial update to the allow-listed fields and refreshes
	// updated_at. Returns ObjectNotFoundError when no row matches id.
	Patch(ctx context.Context, id int64, patch ShipmentPatch) error

	// Get retrieves a shipment by its identifier.
	// Returns ObjectNotFoundError when the shipment does not exist.
	Get(ctx context.Context, id int64) (*shipment.Shipment, error)

	// Delete hard-deletes a shipment. Returns ObjectNotFoundError when the
	// shipment does not exist, so repeated deletes fail idempotently.
	Delete(ctx context.Context, id int64) error
}
