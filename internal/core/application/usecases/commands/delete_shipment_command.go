package commands

import (
	"errors"

	"shiptracker/internal/pkg/errs"
	"shiptracker/internal/pkg/guard"
)

var ErrDeleteShipmentCommandIsNotConstructed = errors.New(
	"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
)

// DeleteShipmentCommand represents a request to hard-delete a shipment.
// There is no soft-delete or tombstone; the row is removed and its ledger
// entries cascade with it.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewDeleteShipmentCommand creates a deletion command.
func NewDeleteShipmentCommand(shipmentID int64) (DeleteShipmentCommand, error) {
	cmd := DeleteShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return DeleteShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to delete.
func (c DeleteShipmentCommand) ShipmentID() int64 { return c.shipmentID }

func (c *DeleteShipmentCommand) setShipmentID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	c.shipmentID = id
	return nil
}
