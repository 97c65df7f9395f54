package commands

import (
	"errors"
	"strings"

	"shiptracker/internal/core/ports"
	"shiptracker/internal/pkg/errs"
	"shiptracker/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a partial update of a shipment's contact,
// routing, or metadata fields. Only the fields present in the patch are
// applied. The current status is not part of the patch by construction;
// audited status changes go through ChangeShipmentStatusCommand.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID int64
	patch      ports.ShipmentPatch

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a partial-update command.
// An empty patch is rejected up front rather than silently succeeding, and
// any present required field must be non-empty.
func NewUpdateShipmentCommand(shipmentID int64, patch ports.ShipmentPatch) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setPatch(patch),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to update.
func (c UpdateShipmentCommand) ShipmentID() int64 { return c.shipmentID }

// Patch returns the allow-listed partial update.
func (c UpdateShipmentCommand) Patch() ports.ShipmentPatch { return c.patch }

func (c *UpdateShipmentCommand) setShipmentID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	c.shipmentID = id
	return nil
}

func (c *UpdateShipmentCommand) setPatch(patch ports.ShipmentPatch) error {
	if patch.IsEmpty() {
		return errs.NewValueIsRequiredError("fields")
	}

	required := map[string]*string{
		"customer_name": patch.CustomerName,
		"phone":         patch.Phone,
		"address":       patch.Address,
		"origin":        patch.Origin,
		"destination":   patch.Destination,
	}
	for name, value := range required {
		if value != nil && strings.TrimSpace(*value) == "" {
			return errs.NewValueIsRequiredError(name)
		}
	}

	c.patch = patch
	return nil
}
