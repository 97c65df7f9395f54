package queries

import (
	"context"
	"strconv"

	"gorm.io/gorm"
)

// SearchShipmentsQueryHandler retrieves paginated shipments matching a
// search term. A blank term degenerates to the plain list: the substring
// pattern becomes '%%', which matches every row.
type SearchShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewSearchShipmentsQueryHandler creates a handler for shipment search queries.
func NewSearchShipmentsQueryHandler(db *gorm.DB) SearchShipmentsQueryHandler {
	return SearchShipmentsQueryHandler{db: db}
}

// Handle executes the search query.
// An identifier of 0 never matches a row, so the id-equality branch only
// fires when the term actually parses as an integer.
func (h SearchShipmentsQueryHandler) Handle(
	ctx context.Context,
	query SearchShipmentsQuery,
) (ShipmentsPageResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentsPageResponse{}, err
	}

	pattern := "%" + query.Term() + "%"

	var searchID int64
	if id, err := strconv.ParseInt(query.Term(), 10, 64); err == nil {
		searchID = id
	}

	offset := (query.Page() - 1) * query.PageSize()
	items := make([]ShipmentReadModel, 0, query.PageSize())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentColumns+`
		FROM orders
		WHERE customer_name ILIKE ? OR phone ILIKE ? OR id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, pattern, pattern, searchID, query.PageSize(), offset).Rows()
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
	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE customer_name ILIKE ? OR phone ILIKE ? OR id = ?
	`, pattern, pattern, searchID).Scan(&total).Error
	if err != nil {
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
