package commands

import (
	"context"
)

// UpdateShipmentCommandHandler handles partial field updates.
// The update never touches the ledger; it cannot change the status.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentCommandHandler creates a handler for partial updates.
func NewUpdateShipmentCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partial-update command.
// Returns ObjectNotFoundError when no shipment matches the identifier.
func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShipmentRepository().Patch(ctx, cmd.ShipmentID(), cmd.Patch()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
