package shared

import (
	"math"
	"net/http"
	"strconv"
)

// Default page window for list endpoints.
const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// Pagination contains metadata for paginated listings.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Page bundles a result slice with its pagination metadata. It is the wire
// shape of every list endpoint.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// NewPagination computes pagination metadata. Pages is ceil(total/limit).
func NewPagination(page, limit, total int) Pagination {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page <= 0 {
		page = DefaultPage
	}
	pages := int(math.Ceil(float64(total) / float64(limit)))
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// NewPage wraps items with computed pagination metadata. A nil slice is
// encoded as an empty array, not null.
func NewPage[T any](items []T, page, limit, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Pagination: NewPagination(page, limit, total)}
}

// PageParams extracts page and limit query parameters, applying defaults.
func PageParams(r *http.Request) (page, limit int) {
	page = DefaultPage
	limit = DefaultLimit
	if v := r.URL.Query().Get("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	return page, limit
}
