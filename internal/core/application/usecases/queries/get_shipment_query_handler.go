package queries

import (
	"context"
	"database/sql"
	"errors"

	"shiptracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves one shipment with its full status
// history. The detail view composes the two stores: current state from the
// shipments table, the audit trail from the ledger.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment detail queries.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the detail query.
// Returns ObjectNotFoundError when the shipment does not exist. A shipment
// with no recorded transitions yields an empty history slice, not an error.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentColumns+`
		FROM orders
		WHERE id = ?
	`, query.ShipmentID()).Row()

	item, err := scanShipmentRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID())
		}
		return GetShipmentQueryResponse{}, err
	}

	entries, err := fetchHistory(ctx, h.db, query.ShipmentID())
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return GetShipmentQueryResponse{
		Shipment: item,
		History:  entries,
	}, nil
}

// fetchHistory loads the ledger for one shipment ordered newest first.
// Shared with the public tracking query.
func fetchHistory(ctx context.Context, db *gorm.DB, shipmentID int64) ([]HistoryEntryReadModel, error) {
	entries := make([]HistoryEntryReadModel, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT status, note, changed_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY changed_at DESC, id DESC
	`, shipmentID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry HistoryEntryReadModel
		if err = rows.Scan(&entry.Status, &entry.Note, &entry.ChangedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
