package shipment

import (
	"fmt"

	"shiptracker/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// The enumeration is closed but transitions are not guarded: the system
// records whatever transition is requested and does not enforce lifecycle
// ordering. Delivered and Cancelled are conventionally terminal, yet a
// further transition from either is still accepted.
type Status string

const (
	// Pending is the initial status assigned when a shipment is created
	// without an explicit status.
	Pending Status = "pending"

	// Processing indicates the shipment is being prepared.
	Processing Status = "processing"

	// Shipped indicates the shipment has left the origin facility.
	Shipped Status = "shipped"

	// InTransit indicates the shipment is moving between facilities.
	InTransit Status = "in_transit"

	// OutForDelivery indicates the shipment is on its final leg.
	OutForDelivery Status = "out_for_delivery"

	// Delivered indicates the shipment reached its destination.
	Delivered Status = "delivered"

	// Cancelled indicates the shipment was cancelled. Reachable from any
	// non-terminal state.
	Cancelled Status = "cancelled"
)

// DefaultStatus is the status assigned to newly created shipments when the
// caller does not specify one.
const DefaultStatus = Pending

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:        {},
		Processing:     {},
		Shipped:        {},
		InTransit:      {},
		OutForDelivery: {},
		Delivered:      {},
		Cancelled:      {},
	}
}

// ParseStatus converts a raw string into a Status, validating membership in
// the closed enumeration. The empty string maps to DefaultStatus.
func ParseStatus(raw string) (Status, error) {
	if raw == "" {
		return DefaultStatus, nil
	}

	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks that the Status value belongs to the closed enumeration.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// IsTerminal reports whether the status is conventionally terminal.
// Terminal here is informational only; no transition is blocked by it.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}
