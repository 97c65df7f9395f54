package shipment

import (
	"errors"
	"strings"
	"time"

	"shiptracker/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrIDAlreadyAssigned is returned when AssignID is called on a shipment
	// that already carries a store-assigned identifier.
	ErrIDAlreadyAssigned = errors.New("shipment ID is already assigned")
)

// Shipment is the aggregate root representing one trackable order.
//
// Invariants:
//   - Contact and routing fields are non-empty
//   - currentStatus is always a member of the closed Status enumeration
//   - id is assigned exactly once, by the store on creation
//   - createdAt is immutable; updatedAt is refreshed on every mutation
//
// Status changes go through ChangeStatus so the owning transaction can pair
// them with a ledger append. The generic field-update path cannot touch the
// status.
type Shipment struct {
	id            int64
	customerName  string
	phone         string
	address       string
	origin        string
	destination   string
	currentStatus Status
	metadata      Metadata
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewShipment creates a Shipment with validated fields and no identifier yet.
// The store assigns the identifier on persistence via AssignID. An empty
// status falls back to DefaultStatus.
func NewShipment(
	customerName, phone, address, origin, destination string,
	status Status,
	metadata Metadata,
) (*Shipment, error) {
	if status == "" {
		status = DefaultStatus
	}

	now := time.Now().UTC()
	s := &Shipment{
		metadata:      metadata,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setCustomerName(customerName),
		s.setPhone(phone),
		s.setAddress(address),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persisted state.
// Used by repositories when rehydrating rows; all stored values are
// revalidated so corrupt rows surface as errors instead of invalid
// aggregates.
func RestoreShipment(
	id int64,
	customerName, phone, address, origin, destination string,
	status Status,
	metadata Metadata,
	createdAt, updatedAt time.Time,
) (*Shipment, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	s := &Shipment{
		id:            id,
		metadata:      metadata,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setCustomerName(customerName),
		s.setPhone(phone),
		s.setAddress(address),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment was created through a factory method.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// AssignID records the store-assigned identifier. It may be called exactly
// once, immediately after the insert that produced the identifier.
func (s *Shipment) AssignID(id int64) error {
	if s.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}

	s.id = id
	return nil
}

// ChangeStatus moves the shipment to the requested status and refreshes
// updatedAt. Membership in the closed enumeration is the only check; the
// ledger records whatever transition is requested, including a repeat of
// the current status.
func (s *Shipment) ChangeStatus(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	s.currentStatus = to
	s.updatedAt = time.Now().UTC()
	return nil
}

// IsEqual compares two shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id != 0 && s.id == other.id
}

// ID returns the store-assigned identifier, zero until persisted.
func (s *Shipment) ID() int64 { return s.id }

// CustomerName returns the customer contact name.
func (s *Shipment) CustomerName() string { return s.customerName }

// Phone returns the customer phone number.
func (s *Shipment) Phone() string { return s.phone }

// Address returns the customer address.
func (s *Shipment) Address() string { return s.address }

// Origin returns the routing origin.
func (s *Shipment) Origin() string { return s.origin }

// Destination returns the routing destination.
func (s *Shipment) Destination() string { return s.destination }

// CurrentStatus returns the current lifecycle status.
func (s *Shipment) CurrentStatus() Status { return s.currentStatus }

// Metadata returns the attached metadata document, nil when absent.
func (s *Shipment) Metadata() Metadata { return s.metadata }

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns the timestamp of the last mutation.
func (s *Shipment) UpdatedAt() time.Time { return s.updatedAt }

func (s *Shipment) setCustomerName(v string) error {
	if strings.TrimSpace(v) == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	s.customerName = v
	return nil
}

func (s *Shipment) setPhone(v string) error {
	if strings.TrimSpace(v) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	s.phone = v
	return nil
}

func (s *Shipment) setAddress(v string) error {
	if strings.TrimSpace(v) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	s.address = v
	return nil
}

func (s *Shipment) setOrigin(v string) error {
	if strings.TrimSpace(v) == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	s.origin = v
	return nil
}

func (s *Shipment) setDestination(v string) error {
	if strings.TrimSpace(v) == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	s.destination = v
	return nil
}

func (s *Shipment) setStatus(v Status) error {
	if err := v.Validate(); err != nil {
		return err
	}
	s.currentStatus = v
	return nil
}
