package careapi

import (
	"net/url"
	"strconv"

	"github.com/iancoleman/strcase"
)

// SortOrder is the direction of a sorted list.
type SortOrder string

// Sort directions.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// QueryParams represents the common list options. Zero-valued fields are
// not sent.
type QueryParams struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder SortOrder
	// Filters are resource-specific equality filters. Keys may be given in
	// camelCase; they are sent in snake_case like the other parameters.
	Filters map[string]string
}

// NewQueryParams creates empty query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string]string),
	}
}

// WithPage sets the 1-based page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// WithLimit sets the page size.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithSearch sets the free-text search term.
func (q *QueryParams) WithSearch(search string) *QueryParams {
	q.Search = search

	return q
}

// WithSort sets the sort field and direction.
func (q *QueryParams) WithSort(field string, order SortOrder) *QueryParams {
	q.SortBy = field
	q.SortOrder = order

	return q
}

// WithFilter adds an equality filter.
func (q *QueryParams) WithFilter(key, value string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string]string)
	}

	q.Filters[key] = value

	return q
}

// ToValues converts the parameters to url.Values with snake_case keys.
// Empty parameters yield empty values, which the transport sends as no
// query string at all.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	set := func(name, value string) {
		if value != "" {
			values.Set(strcase.ToSnake(name), value)
		}
	}

	if q.Page > 0 {
		set("page", strconv.Itoa(q.Page))
	}

	if q.Limit > 0 {
		set("limit", strconv.Itoa(q.Limit))
	}

	set("search", q.Search)
	set("sortBy", q.SortBy)
	set("sortOrder", string(q.SortOrder))

	for key, value := range q.Filters {
		set(key, value)
	}

	return values
}
