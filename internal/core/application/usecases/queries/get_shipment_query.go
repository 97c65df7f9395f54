package queries

import (
	"errors"

	"shiptracker/internal/pkg/errs"
	"shiptracker/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves the full administrative view of one shipment:
// the current record joined with its complete ledger, newest entry first.
type GetShipmentQuery struct {
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a detail query for the given shipment.
func NewGetShipmentQuery(shipmentID int64) (GetShipmentQuery, error) {
	if shipmentID <= 0 {
		return GetShipmentQuery{}, errs.NewValueIsRequiredError("id")
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the requested shipment.
func (q GetShipmentQuery) ShipmentID() int64 { return q.shipmentID }

// GetShipmentQueryResponse joins the current shipment state with its ledger.
type GetShipmentQueryResponse struct {
	Shipment ShipmentReadModel
	History  []HistoryEntryReadModel
}
