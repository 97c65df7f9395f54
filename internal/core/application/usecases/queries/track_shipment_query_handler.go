package queries

import (
	"context"
	"database/sql"
	"errors"

	"shiptracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackShipmentQueryHandler serves the public tracking endpoint. It selects
// only the columns the projection exposes, so contact data never crosses the
// query boundary.
type TrackShipmentQueryHandler struct {
	db *gorm.DB
}

// NewTrackShipmentQueryHandler creates a handler for public tracking queries.
func NewTrackShipmentQueryHandler(db *gorm.DB) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{db: db}
}

// Handle executes the tracking query.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (TrackShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	var response TrackShipmentQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_name, origin, destination, current_status, updated_at
		FROM orders
		WHERE id = ?
	`, query.ShipmentID()).Row().Scan(
		&response.ID,
		&response.CustomerName,
		&response.Origin,
		&response.Destination,
		&response.CurrentStatus,
		&response.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID())
		}
		return TrackShipmentQueryResponse{}, err
	}

	response.History, err = fetchHistory(ctx, h.db, query.ShipmentID())
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	return response, nil
}
