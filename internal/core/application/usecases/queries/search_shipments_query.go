package queries

import (
	"errors"
	"strings"

	"shiptracker/internal/pkg/guard"
)

var ErrSearchShipmentsQueryIsNotConstructed = errors.New(
	"SearchShipmentsQuery must be created via NewSearchShipmentsQuery constructor",
)

// SearchShipmentsQuery retrieves one page of shipments matching a search
// term. Matching is a case-insensitive substring test against customer_name
// and phone, plus identifier equality when the term parses as an integer.
// A blank term is equivalent to listing everything.
type SearchShipmentsQuery struct {
	term     string
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewSearchShipmentsQuery creates a search query with normalized pagination.
// Surrounding whitespace on the term is ignored.
func NewSearchShipmentsQuery(term string, page, pageSize int) SearchShipmentsQuery {
	page, pageSize = normalizePagination(page, pageSize)
	return SearchShipmentsQuery{
		term:     strings.TrimSpace(term),
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q SearchShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrSearchShipmentsQueryIsNotConstructed)
}

// Term returns the trimmed search term, possibly empty.
func (q SearchShipmentsQuery) Term() string { return q.term }

// Page returns the normalized 1-based page number.
func (q SearchShipmentsQuery) Page() int { return q.page }

// PageSize returns the normalized page size.
func (q SearchShipmentsQuery) PageSize() int { return q.pageSize }
