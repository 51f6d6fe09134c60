// Package postgres implements the store interfaces over a PostgreSQL
// database accessed through database/sql with the pgx driver.
package postgres

import (
	"fmt"
	"strings"

	"github.com/vendify/vendify-api/internal/store"
)

// condition set builder shared by the list queries. Conditions are joined
// with AND; arguments are numbered in append order.
type queryFilter struct {
	conds []string
	args  []any
}

// add appends a condition whose placeholders are already numbered by arg.
func (f *queryFilter) add(format string, values ...any) {
	placeholders := make([]any, len(values))
	for i, v := range values {
		f.args = append(f.args, v)
		placeholders[i] = len(f.args)
	}
	f.conds = append(f.conds, fmt.Sprintf(format, placeholders...))
}

// deletion appends the soft-delete visibility condition.
func (f *queryFilter) deletion(d store.DeletionFilter) {
	switch d {
	case store.OnlyDeleted:
		f.conds = append(f.conds, "deleted_at IS NOT NULL")
	case store.ActiveOnly:
		f.conds = append(f.conds, "deleted_at IS NULL")
	case store.IncludeDeleted:
		// no restriction
	}
}

// where renders the WHERE clause, or an empty string when unfiltered.
func (f *queryFilter) where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}

// orderLimitSQL renders the ORDER BY / LIMIT / OFFSET tail of a list
// query. The order column has already been validated against an
// allow-list at request-parsing time, so it is safe to interpolate.
func orderLimitSQL(order store.Order, page store.Page) string {
	direction := "DESC"
	if order.Ascending {
		direction = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s LIMIT %d OFFSET %d",
		order.Column, direction, page.Limit, page.Offset())
}
