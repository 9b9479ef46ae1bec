package careapi

import (
	"context"
	"fmt"
)

// ListFunc fetches one page of a list endpoint.
type ListFunc[T any] func(ctx context.Context, params *QueryParams) (*ListResponse[T], error)

// CollectAll walks every page of list, starting at params.Page (or 1), and
// returns the concatenated data. Each page is a single request; the first
// failure aborts the walk and nothing collected so far is returned. The walk
// stops at an empty page, at the last page, or when the server answers with a
// page number that does not advance.
func CollectAll[T any](ctx context.Context, list ListFunc[T], params *QueryParams) ([]T, error) {
	query := NewQueryParams()
	if params != nil {
		copied := *params
		query = &copied
	}

	if query.Page <= 0 {
		query.Page = 1
	}

	var (
		all  []T
		last int
	)

	for {
		page, err := list(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", query.Page, err)
		}

		// A server that omits the page number is taken to have served the
		// requested one.
		current := *page
		if current.Page <= 0 {
			current.Page = query.Page
		}

		if current.Page <= last {
			return all, nil
		}

		all = append(all, current.Data...)

		if len(current.Data) == 0 || !current.HasNextPage() {
			return all, nil
		}

		last = current.Page
		query.Page = current.Page + 1
	}
}
