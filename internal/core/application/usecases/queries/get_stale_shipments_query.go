package queries

import (
	"errors"
	"time"

	"shiptracker/internal/pkg/errs"
	"shiptracker/internal/pkg/guard"
)

var ErrGetStaleShipmentsQueryIsNotConstructed = errors.New(
	"GetStaleShipmentsQuery must be created via NewGetStaleShipmentsQuery constructor",
)

// GetStaleShipmentsQuery retrieves shipments that have been sitting in a
// non-terminal status without any update for longer than the given threshold.
// The watchdog job uses it to flag deliveries that stalled in the pipeline.
type GetStaleShipmentsQuery struct {
	staleAfter time.Duration
	limit      int

	guard guard.ConstructorGuard
}

// NewGetStaleShipmentsQuery creates a stale-shipment query. The limit caps
// how many rows the watchdog reports per run and is normalized like a page
// size.
func NewGetStaleShipmentsQuery(staleAfter time.Duration, limit int) (GetStaleShipmentsQuery, error) {
	if staleAfter <= 0 {
		return GetStaleShipmentsQuery{}, errs.NewValueIsRequiredError("staleAfter")
	}

	_, limit = normalizePagination(1, limit)

	return GetStaleShipmentsQuery{
		staleAfter: staleAfter,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleShipmentsQueryIsNotConstructed)
}

// StaleAfter returns the inactivity threshold.
func (q GetStaleShipmentsQuery) StaleAfter() time.Duration { return q.staleAfter }

// Limit returns the maximum number of rows to report.
func (q GetStaleShipmentsQuery) Limit() int { return q.limit }

// StaleShipmentReadModel is one stalled shipment in the watchdog report.
type StaleShipmentReadModel struct {
	ID            int64
	CustomerName  string
	CurrentStatus string
	UpdatedAt     time.Time
}
