package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler retrieves paginated shipments from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment list queries.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the list query.
// Returns one page ordered by created_at descending plus the total count, so
// concatenating all pages reproduces the full record set with no duplicates
// or omissions.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) (ShipmentsPageResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentsPageResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	items := make([]ShipmentReadModel, 0, query.PageSize())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentColumns+`
		FROM orders
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, query.PageSize(), offset).Rows()
	if err != nil {
		return ShipmentsPageResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		item, scanErr := scanShipmentRow(rows.Scan)
		if scanErr != nil {
			return ShipmentsPageResponse{}, scanErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return ShipmentsPageResponse{}, err
	}

	var total int64
	if err = h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM orders`).Scan(&total).Error; err != nil {
		return ShipmentsPageResponse{}, err
	}

	return ShipmentsPageResponse{
		Items:      items,
		Total:      total,
		Page:       query.Page(),
		PageSize:   query.PageSize(),
		TotalPages: totalPages(total, query.PageSize()),
	}, nil
}
