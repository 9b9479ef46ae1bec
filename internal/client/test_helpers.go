package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string) *Client {
	return New(careapi.NewConfig(careapi.WithBaseURL(baseURL), careapi.WithAPIKey("test-token")), Options{})
}

// writeJSON writes status and, when body is non-nil, body as JSON.
func writeJSON(writer http.ResponseWriter, status int, body interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	if body != nil {
		_ = json.NewEncoder(writer).Encode(body)
	}
}

// errorMessage is the server's error body.
func errorMessage(message string) map[string]string {
	return map[string]string{"message": message}
}

// TestCreateOperation represents a generic create operation test case.
type TestCreateOperation[TRequest, TResponse any] struct {
	Name         string
	Request      *TRequest
	ExpectedPath string
	ExpectedBody string
	StatusCode   int
	Response     interface{} // Can be *TResponse or error response map
	WantErr      bool
	ErrKind      careapi.ErrorKind
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrKind      careapi.ErrorKind
}

// TestUpdateOperation represents a generic update operation test case.
type TestUpdateOperation[TRequest, TResponse any] struct {
	Name         string
	ID           string
	Request      *TRequest
	ExpectedPath string
	ExpectedBody string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrKind      careapi.ErrorKind
}

// TestDeleteOperation represents a generic delete operation test case.
type TestDeleteOperation struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	WantErr      bool
	ErrKind      careapi.ErrorKind
	Response     interface{}
}

// TestListOperation represents a generic list operation test case.
type TestListOperation[TResponse any] struct {
	Name          string
	Params        *careapi.QueryParams
	ExpectedPath  string
	ExpectedQuery string
	StatusCode    int
	Response      interface{}
	WantErr       bool
	ErrKind       careapi.ErrorKind
	WantCount     int
}

func assertOutcome(t *testing.T, err error, wantErr bool, kind careapi.ErrorKind) {
	t.Helper()

	if !wantErr {
		require.NoError(t, err)

		return
	}

	require.Error(t, err)

	if kind != 0 {
		apiErr, ok := careapi.AsError(err)
		require.True(t, ok, "expected *careapi.Error, got %T", err)
		assert.Equal(t, kind, apiErr.Kind)
	}
}

func assertBody(t *testing.T, request *http.Request, expected string) {
	t.Helper()

	if expected == "" {
		return
	}

	var body json.RawMessage

	assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
	assert.JSONEq(t, expected, string(body))
}

// RunCreateTests runs a series of create operation tests.
func RunCreateTests[TRequest, TResponse any](
	t *testing.T,
	tests []TestCreateOperation[TRequest, TResponse],
	createFunc func(*Client) func(context.Context, *TRequest) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodPost, request.Method)
				assertBody(t, request, testCase.ExpectedBody)

				writeJSON(writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			result, err := createFunc(client)(context.Background(), testCase.Request)
			assertOutcome(t, err, testCase.WantErr, testCase.ErrKind)

			if testCase.WantErr {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
			}
		})
	}
}

// RunGetTests runs a series of get operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client) func(context.Context, string) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.EscapedPath())
				assert.Equal(t, http.MethodGet, request.Method)
				assert.Empty(t, request.URL.RawQuery)

				writeJSON(writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			result, err := getFunc(client)(context.Background(), testCase.ID)
			assertOutcome(t, err, testCase.WantErr, testCase.ErrKind)

			if testCase.WantErr {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
			}
		})
	}
}

// RunListTests runs a series of list operation tests.
func RunListTests[TResponse any](
	t *testing.T,
	tests []TestListOperation[TResponse],
	listFunc func(*Client) func(context.Context, *careapi.QueryParams) (*careapi.ListResponse[TResponse], error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)
				assert.Equal(t, testCase.ExpectedQuery, request.URL.RawQuery)

				writeJSON(writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			result, err := listFunc(client)(context.Background(), testCase.Params)
			assertOutcome(t, err, testCase.WantErr, testCase.ErrKind)

			if testCase.WantErr {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
				assert.Len(t, result.Data, testCase.WantCount)
			}
		})
	}
}

// RunUpdateTests runs a series of update operation tests.
func RunUpdateTests[TRequest, TResponse any](
	t *testing.T,
	tests []TestUpdateOperation[TRequest, TResponse],
	updateFunc func(*Client) func(context.Context, string, *TRequest) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodPatch, request.Method)
				assertBody(t, request, testCase.ExpectedBody)

				writeJSON(writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			result, err := updateFunc(client)(context.Background(), testCase.ID, testCase.Request)
			assertOutcome(t, err, testCase.WantErr, testCase.ErrKind)

			if testCase.WantErr {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
			}
		})
	}
}

// RunDeleteTests runs a series of delete operation tests.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*Client) func(context.Context, string) error,
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodDelete, request.Method)

				if testCase.Response == nil {
					writer.WriteHeader(testCase.StatusCode)

					return
				}

				writeJSON(writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			err := deleteFunc(client)(context.Background(), testCase.ID)
			assertOutcome(t, err, testCase.WantErr, testCase.ErrKind)
		})
	}
}
