package client

import (
	internalhttp "github.com/fivetwenty-io/careapi/internal/http"
	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

// UsersClient implements careapi.UsersClient.
type UsersClient struct {
	resource[careapi.User, careapi.UserCreateRequest, careapi.UserUpdateRequest]
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *internalhttp.Client) *UsersClient {
	return &UsersClient{
		resource: newResource[careapi.User, careapi.UserCreateRequest, careapi.UserUpdateRequest](httpClient, "/users"),
	}
}
