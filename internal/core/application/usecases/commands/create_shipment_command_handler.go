package commands

import (
	"context"

	"shiptracker/internal/core/domain/model/history"
	"shiptracker/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// creation. The new shipment row and its creation ledger entry are written
// inside one transaction, so every shipment has at least one history entry
// from the moment it exists.
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// Requires a UoWFactory spanning both the shipment store and the ledger.
func NewCreateShipmentCommandHandler(uowFactory UoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command and returns the store-assigned
// identifier of the new shipment.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	aggregate, err := shipment.NewShipment(
		cmd.CustomerName(),
		cmd.Phone(),
		cmd.Address(),
		cmd.Origin(),
		cmd.Destination(),
		cmd.Status(),
		cmd.Metadata(),
	)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	entry, err := history.NewEntry(aggregate.ID(), aggregate.CurrentStatus(), history.CreationNote)
	if err != nil {
		return 0, err
	}

	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}
