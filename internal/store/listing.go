// Package store defines the persistence interfaces consumed by the API
// handlers, together with the filtering, ordering and pagination types
// those interfaces accept. Implementations live under platform/postgres.
package store

// Pagination defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// DeletionFilter selects which records a query sees with respect to their
// soft-delete state.
type DeletionFilter int

const (
	// ActiveOnly restricts results to records that are not soft deleted.
	// This is the default visibility.
	ActiveOnly DeletionFilter = iota

	// IncludeDeleted applies no deletion-state restriction.
	IncludeDeleted

	// OnlyDeleted restricts results to soft-deleted records.
	OnlyDeleted
)

// ResolveDeletionFilter combines the two request flags into a filter.
// only_deleted takes precedence over include_deleted.
func ResolveDeletionFilter(includeDeleted, onlyDeleted bool) DeletionFilter {
	switch {
	case onlyDeleted:
		return OnlyDeleted
	case includeDeleted:
		return IncludeDeleted
	default:
		return ActiveOnly
	}
}

// Order describes the resolved sort specification for a list query.
// Column is always a validated column name; see shared.ParseOrder.
type Order struct {
	Column    string `json:"column"`
	Ascending bool   `json:"ascending"`
}

// Page describes the resolved pagination window for a list query.
type Page struct {
	Number int
	Limit  int
}

// Offset returns the zero-based row offset of the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}
