package commands

import (
	"context"

	"shiptracker/internal/core/domain/model/history"
)

// ChangeShipmentStatusCommandHandler handles the composite status-change
// operation: the shipment's current status is updated and a ledger entry is
// appended within a single transaction. A ledger entry is written on every
// invocation, including a repeat of the current status.
type ChangeShipmentStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeShipmentStatusCommandHandler creates a handler for status changes.
// Requires a UoWFactory spanning both the shipment store and the ledger.
func NewChangeShipmentStatusCommandHandler(uowFactory UoWFactory) ChangeShipmentStatusCommandHandler {
	return ChangeShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status-change command.
// Returns ObjectNotFoundError when the shipment does not exist; a deletion
// racing this operation resolves to the same error rather than a partial
// write, since the load and both writes share one transaction.
func (h *ChangeShipmentStatusCommandHandler) Handle(ctx context.Context, cmd ChangeShipmentStatusCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := history.NewEntry(aggregate.ID(), aggregate.CurrentStatus(), cmd.Note())
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
