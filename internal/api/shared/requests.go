package shared

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/vendify/vendify-api/internal/store"
)

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ParseOrder resolves an order specification of the form "column.direction"
// against an allow-list of sortable columns.
//
// A missing specification sorts by created_at descending. When a
// specification is present, an unrecognized column silently falls back to
// created_at while the direction is still honored; the direction defaults
// to ascending unless it is exactly "desc" (case-insensitive).
func ParseOrder(raw string, allowed []string) store.Order {
	if raw == "" {
		return store.Order{Column: "created_at", Ascending: false}
	}

	column, direction, _ := strings.Cut(raw, ".")
	resolved := "created_at"
	for _, c := range allowed {
		if c == column {
			resolved = column
			break
		}
	}

	return store.Order{
		Column:    resolved,
		Ascending: !strings.EqualFold(direction, "desc"),
	}
}

// ParsePage resolves the page/limit query parameters into a pagination
// window. Parsing is tolerant: invalid numbers fall back to the defaults
// (page 1, limit 20) instead of erroring, and the limit is clamped to
// [1, 100].
func ParsePage(rawPage, rawLimit string) store.Page {
	page := store.DefaultPage
	if n, err := strconv.Atoi(rawPage); err == nil && n >= 1 {
		page = n
	}

	limit := store.DefaultLimit
	if n, err := strconv.Atoi(rawLimit); err == nil {
		limit = n
	}
	if limit < 1 {
		limit = 1
	}
	if limit > store.MaxLimit {
		limit = store.MaxLimit
	}

	return store.Page{Number: page, Limit: limit}
}

// QueryFlag reports whether the named query parameter is exactly "true".
func QueryFlag(r *http.Request, name string) bool {
	return r.URL.Query().Get(name) == "true"
}

// QueryBool parses a tri-state boolean query parameter: "true" and
// "false" yield a value, anything else (including absence) yields nil.
func QueryBool(r *http.Request, name string) *bool {
	switch r.URL.Query().Get(name) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

// QueryFloat parses an optional numeric query parameter, returning nil
// when the parameter is absent or not a number.
func QueryFloat(r *http.Request, name string) *float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
