// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries run raw SQL against the datastore and return read models shaped for
// specific use cases rather than domain aggregates.
package queries

import (
	"time"

	"shiptracker/internal/core/domain/model/shipment"
)

// Pagination bounds shared by the list and search queries. Out-of-range input
// is coerced, never rejected.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// normalizePagination coerces arbitrary page/pageSize input into valid
// bounds: non-positive values fall back to the defaults and pageSize is
// clamped to MaxPageSize.
func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// totalPages computes ceil(total / pageSize).
func totalPages(total int64, pageSize int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// ShipmentReadModel is the full administrative projection of a shipment row.
type ShipmentReadModel struct {
	ID            int64
	CustomerName  string
	Phone         string
	Address       string
	Origin        string
	Destination   string
	CurrentStatus string
	Metadata      shipment.Metadata
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HistoryEntryReadModel is one ledger entry in a read response.
type HistoryEntryReadModel struct {
	Status    string
	Note      string
	ChangedAt time.Time
}

// ShipmentsPageResponse is one page of a list or search result.
type ShipmentsPageResponse struct {
	Items      []ShipmentReadModel
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// shipmentColumns is the select list shared by the shipment row scanners.
const shipmentColumns = `
	id,
	customer_name,
	phone,
	address,
	origin,
	destination,
	current_status,
	metadata,
	created_at,
	updated_at
`

// scanShipmentRow reads one shipment row into its read model, rehydrating
// the serialized metadata document.
func scanShipmentRow(scan func(dest ...any) error) (ShipmentReadModel, error) {
	var (
		item        ShipmentReadModel
		metadataRaw []byte
	)

	if err := scan(
		&item.ID,
		&item.CustomerName,
		&item.Phone,
		&item.Address,
		&item.Origin,
		&item.Destination,
		&item.CurrentStatus,
		&metadataRaw,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return ShipmentReadModel{}, err
	}

	metadata, err := shipment.ParseMetadata(metadataRaw)
	if err != nil {
		return ShipmentReadModel{}, err
	}
	item.Metadata = metadata

	return item, nil
}
