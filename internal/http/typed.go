package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

// Call runs the pipeline for req and decodes the 2xx body into a fresh T.
// The caller gets either a fully decoded value or an error, never a
// partially populated one.
func Call[T any](ctx context.Context, c *Client, req *Request) (*T, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	var result T

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, careapi.NewDecodingError(err)
	}

	return &result, nil
}

// Get performs a GET request and decodes the response into T.
func Get[T any](ctx context.Context, c *Client, path string, query url.Values) (*T, error) {
	return Call[T](ctx, c, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body and decodes the response into T.
func Post[T any](ctx context.Context, c *Client, path string, query url.Values, body interface{}) (*T, error) {
	return Call[T](ctx, c, &Request{Method: http.MethodPost, Path: path, Query: query, Body: body})
}

// Put performs a PUT request with a JSON body and decodes the response into T.
func Put[T any](ctx context.Context, c *Client, path string, query url.Values, body interface{}) (*T, error) {
	return Call[T](ctx, c, &Request{Method: http.MethodPut, Path: path, Query: query, Body: body})
}

// Patch performs a PATCH request with a JSON body and decodes the response into T.
func Patch[T any](ctx context.Context, c *Client, path string, query url.Values, body interface{}) (*T, error) {
	return Call[T](ctx, c, &Request{Method: http.MethodPatch, Path: path, Query: query, Body: body})
}

// Delete performs a DELETE request and decodes the response into T.
func Delete[T any](ctx context.Context, c *Client, path string, query url.Values) (*T, error) {
	return Call[T](ctx, c, &Request{Method: http.MethodDelete, Path: path, Query: query})
}
