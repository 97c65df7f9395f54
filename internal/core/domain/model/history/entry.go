// Package history provides the append-only audit trail for shipment status
// transitions. Each Entry is an immutable record of a status value observed
// at a point in time; entries are never mutated or deleted once written.
package history

import (
	"errors"
	"time"

	"shiptracker/internal/core/domain/model/shipment"
	"shiptracker/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not created
// through the NewEntry or RestoreEntry factory methods.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// CreationNote is the annotation recorded on the ledger entry written when a
// shipment is created.
const CreationNote = "Order created"

// Entry is one immutable audit record in a shipment's ledger.
// The entry references its shipment by identifier only; the ledger, not the
// shipment, owns the entries.
type Entry struct {
	id        int64
	orderID   int64
	status    shipment.Status
	note      string
	changedAt time.Time

	isConstructed bool
}

// NewEntry creates a ledger entry for the given shipment and status.
// changedAt is server-assigned at construction time.
func NewEntry(orderID int64, status shipment.Status, note string) (*Entry, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("order_id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Entry{
		orderID:       orderID,
		status:        status,
		note:          note,
		changedAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs a ledger entry from persisted state.
func RestoreEntry(id, orderID int64, status shipment.Status, note string, changedAt time.Time) (*Entry, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("order_id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Entry{
		id:            id,
		orderID:       orderID,
		status:        status,
		note:          note,
		changedAt:     changedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Entry was created through a factory method.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// AssignID records the store-assigned identifier after insertion.
func (e *Entry) AssignID(id int64) error {
	if e.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}

	e.id = id
	return nil
}

// ID returns the store-assigned identifier, zero until persisted.
func (e *Entry) ID() int64 { return e.id }

// OrderID returns the identifier of the shipment this entry belongs to.
func (e *Entry) OrderID() int64 { return e.orderID }

// Status returns the status value recorded at this point in time.
func (e *Entry) Status() shipment.Status { return e.status }

// Note returns the optional free-text annotation.
func (e *Entry) Note() string { return e.note }

// ChangedAt returns the server-assigned timestamp of the transition.
func (e *Entry) ChangedAt() time.Time { return e.changedAt }
