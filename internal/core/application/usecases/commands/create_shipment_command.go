package commands

import (
	"errors"

	"shiptracker/internal/core/domain/model/shipment"
	"shiptracker/internal/pkg/errs"
	"shiptracker/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new shipment.
// All contact and routing fields are required; the status defaults to the
// initial state when unspecified, and metadata is optional.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	customerName string
	phone        string
	address      string
	origin       string
	destination  string
	status       shipment.Status
	metadata     shipment.Metadata

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// rawStatus may be empty, in which case the initial status applies; any other
// value must belong to the closed status enumeration. Metadata arrives
// already parsed; callers treating malformed metadata as a soft failure pass
// nil here and surface their own warning.
func NewCreateShipmentCommand(
	customerName, phone, address, origin, destination, rawStatus string,
	metadata shipment.Metadata,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		metadata: metadata,
		guard:    guard.NewConstructorGuard(),
	}

	status, statusErr := shipment.ParseStatus(rawStatus)
	if statusErr == nil {
		cmd.status = status
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setPhone(phone),
		cmd.setAddress(address),
		cmd.setOrigin(origin),
		cmd.setDestination(destination),
		statusErr,
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// CustomerName returns the customer contact name.
func (c CreateShipmentCommand) CustomerName() string { return c.customerName }

// Phone returns the customer phone number.
func (c CreateShipmentCommand) Phone() string { return c.phone }

// Address returns the customer address.
func (c CreateShipmentCommand) Address() string { return c.address }

// Origin returns the routing origin.
func (c CreateShipmentCommand) Origin() string { return c.origin }

// Destination returns the routing destination.
func (c CreateShipmentCommand) Destination() string { return c.destination }

// Status returns the validated initial status.
func (c CreateShipmentCommand) Status() shipment.Status { return c.status }

// Metadata returns the optional metadata document.
func (c CreateShipmentCommand) Metadata() shipment.Metadata { return c.metadata }

func (c *CreateShipmentCommand) setCustomerName(v string) error {
	if v == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	c.customerName = v
	return nil
}

func (c *CreateShipmentCommand) setPhone(v string) error {
	if v == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = v
	return nil
}

func (c *CreateShipmentCommand) setAddress(v string) error {
	if v == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = v
	return nil
}

func (c *CreateShipmentCommand) setOrigin(v string) error {
	if v == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	c.origin = v
	return nil
}

func (c *CreateShipmentCommand) setDestination(v string) error {
	if v == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	c.destination = v
	return nil
}
