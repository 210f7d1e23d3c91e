package pagination

import (
	"net/http"
	"strconv"
)

// DefaultPerPage is the catalog page size used when the request does not
// specify one.
const DefaultPerPage = 12

// MaxPerPage bounds the page size accepted from requests.
const MaxPerPage = 100

// Params holds pagination parameters extracted from query strings.
type Params struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Offset  int `json:"-"`
}

// DefaultParams returns the default pagination parameters.
func DefaultParams() Params {
	return Params{
		Page:    1,
		PerPage: DefaultPerPage,
		Offset:  0,
	}
}

// Normalize clamps the params to valid values and recomputes the offset.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	p.Offset = (p.Page - 1) * p.PerPage
	return p
}

// FromRequest extracts pagination parameters from an HTTP request.
// Unparseable or out-of-range values fall back to the defaults.
func FromRequest(r *http.Request) Params {
	p := DefaultParams()

	if page := r.URL.Query().Get("page"); page != "" {
		if v, err := strconv.Atoi(page); err == nil && v > 0 {
			p.Page = v
		}
	}

	if perPage := r.URL.Query().Get("limit"); perPage != "" {
		if v, err := strconv.Atoi(perPage); err == nil && v > 0 && v <= MaxPerPage {
			p.PerPage = v
		}
	}

	p.Offset = (p.Page - 1) * p.PerPage
	return p
}

// Result wraps a paginated response.
type Result[T any] struct {
	Data       []T  `json:"data"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalPages int  `json:"total_pages"`
	HasMore    bool `json:"has_more"`
}

// NewResult creates a paginated result. TotalPages is the ceiling of
// total/perPage and HasMore reports whether pages remain after the current one.
func NewResult[T any](data []T, total int, params Params) Result[T] {
	totalPages := total / params.PerPage
	if total%params.PerPage > 0 {
		totalPages++
	}

	if data == nil {
		data = []T{}
	}

	return Result[T]{
		Data:       data,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages,
		HasMore:    params.Page < totalPages,
	}
}
