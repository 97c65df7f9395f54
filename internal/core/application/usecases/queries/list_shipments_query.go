package queries

import (
	"errors"

	"shiptracker/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery retrieves one reverse-chronological page of shipments.
// Malformed pagination input is coerced to valid defaults, never rejected.
type ListShipmentsQuery struct {
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a list query with normalized pagination.
func NewListShipmentsQuery(page, pageSize int) ListShipmentsQuery {
	page, pageSize = normalizePagination(page, pageSize)
	return ListShipmentsQuery{
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Page returns the normalized 1-based page number.
func (q ListShipmentsQuery) Page() int { return q.page }

// PageSize returns the normalized page size.
func (q ListShipmentsQuery) PageSize() int { return q.pageSize }
