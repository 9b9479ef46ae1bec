package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/careapi/internal/constants"
	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

type listOptions struct {
	page      int
	limit     int
	search    string
	sortBy    string
	sortOrder string
	filters   []string
	all       bool
}

func (o *listOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.page, "page", 0, "page number")
	cmd.Flags().IntVar(&o.limit, "limit", 0, "results per page")
	cmd.Flags().StringVar(&o.search, "search", "", "free-text search")
	cmd.Flags().StringVar(&o.sortBy, "sort-by", "", "field to sort by")
	cmd.Flags().StringVar(&o.sortOrder, "sort-order", "", "sort order (asc, desc)")
	cmd.Flags().StringSliceVar(&o.filters, "filter", nil, "filter as key=value (repeatable)")
	cmd.Flags().BoolVar(&o.all, "all", false, "fetch all pages")
}

func (o *listOptions) params() (*careapi.QueryParams, error) {
	params := careapi.NewQueryParams()

	if o.page > 0 {
		params.WithPage(o.page)
	}

	if o.limit > 0 {
		params.WithLimit(o.limit)
	}

	if o.search != "" {
		params.WithSearch(o.search)
	}

	if o.sortBy != "" || o.sortOrder != "" {
		order := careapi.SortOrder(strings.ToLower(o.sortOrder))
		switch order {
		case "", careapi.SortAsc, careapi.SortDesc:
		default:
			return nil, fmt.Errorf("%w: %s", constants.ErrInvalidSortOrder, o.sortOrder)
		}

		params.WithSort(o.sortBy, order)
	}

	for _, filter := range o.filters {
		key, value, ok := strings.Cut(filter, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidFilter, filter)
		}

		params.WithFilter(key, value)
	}

	return params, nil
}

// fetch runs list once, or across every page when --all is set.
func fetch[T any](ctx context.Context, opts *listOptions, list careapi.ListFunc[T]) (interface{}, []T, error) {
	params, err := opts.params()
	if err != nil {
		return nil, nil, err
	}

	if opts.all {
		items, err := careapi.CollectAll(ctx, list, params)
		if err != nil {
			return nil, nil, err
		}

		return items, items, nil
	}

	resp, err := list(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	return resp, resp.Data, nil
}

// newListCommand builds a "list" subcommand around one paginated endpoint.
func newListCommand[T any](
	resource string,
	list func(careapi.Client) careapi.ListFunc[T],
	header []string,
	row func(*T) []string,
) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List " + resource,
		Long:    "List " + resource + " with optional search, sorting and filtering",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewClient()

			value, items, err := fetch(cmd.Context(), opts, list(client))
			if err != nil {
				return describeError("failed to list "+resource, err)
			}

			rows := make([][]string, 0, len(items))
			for i := range items {
				rows = append(rows, row(&items[i]))
			}

			return render(cmd, value, header, rows)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

// newGetCommand builds a "get ID" subcommand around one detail endpoint.
func newGetCommand[T any](
	resource string,
	get func(careapi.Client) func(context.Context, string) (*T, error),
	properties func(*T) [][]string,
) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get " + resource + " details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewClient()

			item, err := get(client)(cmd.Context(), args[0])
			if err != nil {
				return describeError("failed to get "+resource, err)
			}

			return render(cmd, item, propertyHeader, properties(item))
		},
	}
}

// newDeleteCommand builds a "delete ID" subcommand.
func newDeleteCommand(
	resource string,
	remove func(careapi.Client) func(context.Context, string) error,
) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete " + resource,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewClient()

			err := remove(client)(cmd.Context(), args[0])
			if err != nil {
				return describeError("failed to delete "+resource, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", resource, args[0])

			return nil
		},
	}
}
