package client

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute_Expand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		values   []string
		expected string
	}{
		{"no placeholders", "/users", nil, "/users"},
		{"single placeholder", "/users/{id}", []string{"42"}, "/users/42"},
		{"two placeholders", "/clients/{id}/programs/{programId}", []string{"c1", "p1"}, "/clients/c1/programs/p1"},
		{"values are escaped", "/users/{id}", []string{"a/b c"}, "/users/a%2Fb%20c"},
		{"missing values keep placeholder", "/programs/{id}/exercises/{exerciseId}", []string{"p1"}, "/programs/p1/exercises/{exerciseId}"},
		{"surplus values are ignored", "/users/{id}", []string{"42", "extra"}, "/users/42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			route := Route{Method: http.MethodGet, Path: tt.path}
			assert.Equal(t, tt.expected, route.Expand(tt.values...))
		})
	}
}

func TestRoute_Request(t *testing.T) {
	t.Parallel()

	route := Route{Method: http.MethodPost, Path: "/clients/{id}/programs"}
	query := url.Values{"page": []string{"1"}}
	body := map[string]string{"programId": "p1"}

	req := route.Request(query, body, "c1")

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/clients/c1/programs", req.Path)
	assert.Equal(t, query, req.Query)
	assert.Equal(t, body, req.Body)
}

func TestNewResourceRoutes(t *testing.T) {
	t.Parallel()

	routes := newResourceRoutes("/exercises")

	assert.Equal(t, Route{Method: http.MethodGet, Path: "/exercises"}, routes.list)
	assert.Equal(t, Route{Method: http.MethodGet, Path: "/exercises/{id}"}, routes.get)
	assert.Equal(t, Route{Method: http.MethodPost, Path: "/exercises"}, routes.create)
	assert.Equal(t, Route{Method: http.MethodPatch, Path: "/exercises/{id}"}, routes.update)
	assert.Equal(t, Route{Method: http.MethodDelete, Path: "/exercises/{id}"}, routes.delete)
}
