package client

import (
	"context"
	"net/http"

	internalhttp "github.com/fivetwenty-io/careapi/internal/http"
	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

var authRoutes = struct {
	login          Route
	register       Route
	refresh        Route
	logout         Route
	me             Route
	forgotPassword Route
	resetPassword  Route
	changePassword Route
}{
	login:          Route{Method: http.MethodPost, Path: "/auth/login"},
	register:       Route{Method: http.MethodPost, Path: "/auth/register"},
	refresh:        Route{Method: http.MethodPost, Path: "/auth/refresh"},
	logout:         Route{Method: http.MethodPost, Path: "/auth/logout"},
	me:             Route{Method: http.MethodGet, Path: "/auth/me"},
	forgotPassword: Route{Method: http.MethodPost, Path: "/auth/forgot-password"},
	resetPassword:  Route{Method: http.MethodPost, Path: "/auth/reset-password"},
	changePassword: Route{Method: http.MethodPost, Path: "/auth/change-password"},
}

// AuthClient implements careapi.AuthClient.
//
// Tokens returned by Login, Register and Refresh are handed to the caller
// as-is; installing one is the caller's job (Client.SetAPIKey).
type AuthClient struct {
	httpClient *internalhttp.Client
}

// NewAuthClient creates a new auth client.
func NewAuthClient(httpClient *internalhttp.Client) *AuthClient {
	return &AuthClient{
		httpClient: httpClient,
	}
}

// Login implements careapi.AuthClient.Login.
func (c *AuthClient) Login(ctx context.Context, request *careapi.LoginRequest) (*careapi.AuthResponse, error) {
	return internalhttp.Call[careapi.AuthResponse](ctx, c.httpClient, authRoutes.login.Request(nil, request))
}

// Register implements careapi.AuthClient.Register.
func (c *AuthClient) Register(ctx context.Context, request *careapi.RegisterRequest) (*careapi.AuthResponse, error) {
	return internalhttp.Call[careapi.AuthResponse](ctx, c.httpClient, authRoutes.register.Request(nil, request))
}

// Refresh implements careapi.AuthClient.Refresh.
func (c *AuthClient) Refresh(ctx context.Context, request *careapi.RefreshTokenRequest) (*careapi.AuthResponse, error) {
	return internalhttp.Call[careapi.AuthResponse](ctx, c.httpClient, authRoutes.refresh.Request(nil, request))
}

// Logout implements careapi.AuthClient.Logout. The credential stays set.
func (c *AuthClient) Logout(ctx context.Context) error {
	return c.httpClient.Exec(ctx, authRoutes.logout.Request(nil, nil))
}

// Me implements careapi.AuthClient.Me.
func (c *AuthClient) Me(ctx context.Context) (*careapi.User, error) {
	return internalhttp.Call[careapi.User](ctx, c.httpClient, authRoutes.me.Request(nil, nil))
}

// ForgotPassword implements careapi.AuthClient.ForgotPassword.
func (c *AuthClient) ForgotPassword(ctx context.Context, request *careapi.ForgotPasswordRequest) error {
	return c.httpClient.Exec(ctx, authRoutes.forgotPassword.Request(nil, request))
}

// ResetPassword implements careapi.AuthClient.ResetPassword.
func (c *AuthClient) ResetPassword(ctx context.Context, request *careapi.ResetPasswordRequest) error {
	return c.httpClient.Exec(ctx, authRoutes.resetPassword.Request(nil, request))
}

// ChangePassword implements careapi.AuthClient.ChangePassword.
func (c *AuthClient) ChangePassword(ctx context.Context, request *careapi.ChangePasswordRequest) error {
	return c.httpClient.Exec(ctx, authRoutes.changePassword.Request(nil, request))
}
