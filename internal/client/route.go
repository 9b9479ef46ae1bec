package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	internalhttp "github.com/fivetwenty-io/careapi/internal/http"
	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

// Route is one entry of an endpoint group's route table. Path is relative to
// the base URL and may contain {placeholder} segments.
type Route struct {
	Method string
	Path   string
}

// Expand replaces the placeholder segments of r.Path, in order, with the
// path-escaped values. Surplus placeholders are left untouched.
func (r Route) Expand(values ...string) string {
	if len(values) == 0 {
		return r.Path
	}

	segments := strings.Split(r.Path, "/")
	next := 0

	for i, segment := range segments {
		if next == len(values) {
			break
		}

		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			segments[i] = url.PathEscape(values[next])
			next++
		}
	}

	return strings.Join(segments, "/")
}

// Request builds the transport request for r.
func (r Route) Request(query url.Values, body interface{}, values ...string) *internalhttp.Request {
	return &internalhttp.Request{
		Method: r.Method,
		Path:   r.Expand(values...),
		Query:  query,
		Body:   body,
	}
}

// resourceRoutes is the route table of a plain CRUD resource.
type resourceRoutes struct {
	list   Route
	get    Route
	create Route
	update Route
	delete Route
}

func newResourceRoutes(basePath string) resourceRoutes {
	itemPath := basePath + "/{id}"

	return resourceRoutes{
		list:   Route{Method: http.MethodGet, Path: basePath},
		get:    Route{Method: http.MethodGet, Path: itemPath},
		create: Route{Method: http.MethodPost, Path: basePath},
		update: Route{Method: http.MethodPatch, Path: itemPath},
		delete: Route{Method: http.MethodDelete, Path: itemPath},
	}
}

// resource implements List, Get, Create, Update and Delete for a base path.
// T is the resource, C its create payload and U its update payload.
type resource[T, C, U any] struct {
	httpClient *internalhttp.Client
	routes     resourceRoutes
}

func newResource[T, C, U any](httpClient *internalhttp.Client, basePath string) resource[T, C, U] {
	return resource[T, C, U]{
		httpClient: httpClient,
		routes:     newResourceRoutes(basePath),
	}
}

// List fetches one page of the resource.
func (r *resource[T, C, U]) List(ctx context.Context, params *careapi.QueryParams) (*careapi.ListResponse[T], error) {
	return internalhttp.Call[careapi.ListResponse[T]](ctx, r.httpClient, r.routes.list.Request(params.ToValues(), nil))
}

// Get fetches a single item by ID.
func (r *resource[T, C, U]) Get(ctx context.Context, id string) (*T, error) {
	return internalhttp.Call[T](ctx, r.httpClient, r.routes.get.Request(nil, nil, id))
}

// Create posts a new item.
func (r *resource[T, C, U]) Create(ctx context.Context, request *C) (*T, error) {
	return internalhttp.Call[T](ctx, r.httpClient, r.routes.create.Request(nil, request))
}

// Update patches an existing item.
func (r *resource[T, C, U]) Update(ctx context.Context, id string, request *U) (*T, error) {
	return internalhttp.Call[T](ctx, r.httpClient, r.routes.update.Request(nil, request, id))
}

// Delete removes an item. The response body is ignored.
func (r *resource[T, C, U]) Delete(ctx context.Context, id string) error {
	return r.httpClient.Exec(ctx, r.routes.delete.Request(nil, nil, id))
}
