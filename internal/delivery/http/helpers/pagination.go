package helpers

import (
	"net/http"
	"strconv"

	"sakeenah/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ParsePagination reads limit and offset from the request query string,
// clamps them to valid ranges, and returns domain.PaginationParams.
// Invalid or missing values fall back to defaults.
func ParsePagination(r *http.Request) domain.PaginationParams {
	limit := DefaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			limit = min(v, MaxLimit)
		}
	}
	offset := 0
	if s := r.URL.Query().Get("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			offset = v
		}
	}
	return domain.PaginationParams{Limit: limit, Offset: offset}
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NewPaginationMeta builds PaginationMeta from the applied params and the total count.
func NewPaginationMeta(params domain.PaginationParams, total int) PaginationMeta {
	return PaginationMeta{
		Total:  total,
		Limit:  params.Limit,
		Offset: params.Offset,
	}
}
