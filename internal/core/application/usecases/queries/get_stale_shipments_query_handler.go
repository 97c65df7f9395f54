package queries

import (
	"context"
	"time"

	"shiptracker/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetStaleShipmentsQueryHandler finds shipments stuck in a non-terminal
// status past the inactivity threshold.
type GetStaleShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleShipmentsQueryHandler creates a handler for stale-shipment
// queries.
func NewGetStaleShipmentsQueryHandler(db *gorm.DB) GetStaleShipmentsQueryHandler {
	return GetStaleShipmentsQueryHandler{db: db}
}

// Handle executes the stale-shipment query. Oldest shipments come first so
// the longest-stalled deliveries are reported even when the limit truncates
// the result.
func (h GetStaleShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetStaleShipmentsQuery,
) ([]StaleShipmentReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.StaleAfter())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_name, current_status, updated_at
		FROM orders
		WHERE current_status NOT IN (?, ?)
		  AND updated_at < ?
		ORDER BY updated_at ASC
		LIMIT ?
	`, shipment.Delivered.String(), shipment.Cancelled.String(), cutoff, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]StaleShipmentReadModel, 0)
	for rows.Next() {
		var item StaleShipmentReadModel
		if err = rows.Scan(&item.ID, &item.CustomerName, &item.CurrentStatus, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
