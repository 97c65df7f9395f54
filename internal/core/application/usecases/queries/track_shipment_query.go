package queries

import (
	"errors"
	"time"

	"shiptracker/internal/pkg/errs"
	"shiptracker/internal/pkg/guard"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery retrieves the public tracking view of a shipment.
type TrackShipmentQuery struct {
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a tracking query for the given shipment.
func NewTrackShipmentQuery(shipmentID int64) (TrackShipmentQuery, error) {
	if shipmentID <= 0 {
		return TrackShipmentQuery{}, errs.NewValueIsRequiredError("id")
	}

	return TrackShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the tracked shipment.
func (q TrackShipmentQuery) ShipmentID() int64 { return q.shipmentID }

// TrackShipmentQueryResponse is the customer-facing projection. It carries no
// contact or delivery address data, only what a recipient needs to follow the
// parcel.
type TrackShipmentQueryResponse struct {
	ID            int64
	CustomerName  string
	Origin        string
	Destination   string
	CurrentStatus string
	UpdatedAt     time.Time
	History       []HistoryEntryReadModel
}
