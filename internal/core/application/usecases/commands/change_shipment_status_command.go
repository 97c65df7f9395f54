package commands

import (
	"errors"

	"shiptracker/internal/core/domain/model/shipment"
	"shiptracker/internal/pkg/errs"
	"shiptracker/internal/pkg/guard"
)

var ErrChangeShipmentStatusCommandIsNotConstructed = errors.New(
	"ChangeShipmentStatusCommand must be created via NewChangeShipmentStatusCommand constructor",
)

// ChangeShipmentStatusCommand represents a request to move a shipment to a
// new lifecycle status with an optional annotation. The target status must
// belong to the closed enumeration; transition ordering is not checked, so
// any member may follow any other.
type ChangeShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID int64
	status     shipment.Status
	note       string

	guard guard.ConstructorGuard
}

// NewChangeShipmentStatusCommand creates a status-change command.
// rawStatus is required here: unlike creation there is no default to fall
// back to.
func NewChangeShipmentStatusCommand(shipmentID int64, rawStatus, note string) (ChangeShipmentStatusCommand, error) {
	cmd := ChangeShipmentStatusCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	var statusErr error
	if rawStatus == "" {
		statusErr = errs.NewValueIsRequiredError("status")
	} else {
		var status shipment.Status
		status, statusErr = shipment.ParseStatus(rawStatus)
		if statusErr == nil {
			cmd.status = status
		}
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		statusErr,
	); err != nil {
		return ChangeShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to transition.
func (c ChangeShipmentStatusCommand) ShipmentID() int64 { return c.shipmentID }

// Status returns the validated target status.
func (c ChangeShipmentStatusCommand) Status() shipment.Status { return c.status }

// Note returns the optional free-text annotation for the ledger entry.
func (c ChangeShipmentStatusCommand) Note() string { return c.note }

func (c *ChangeShipmentStatusCommand) setShipmentID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	c.shipmentID = id
	return nil
}
