package careclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/careapi/pkg/careapi"
	"github.com/fivetwenty-io/careapi/pkg/careclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config uses defaults", func(t *testing.T) {
		t.Parallel()

		client := careclient.New(nil)
		require.NotNil(t, client)

		config := client.Config()
		assert.Equal(t, "https://api.careapi.io", config.BaseURL)
		assert.Empty(t, config.APIKey)
		assert.Equal(t, 30*time.Second, config.Timeout)
		assert.Empty(t, config.Headers)
	})

	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client := careclient.New(careapi.NewConfig(
			careapi.WithBaseURL("https://api.example.com"),
			careapi.WithTimeout(5*time.Second),
		))

		config := client.Config()
		assert.Equal(t, "https://api.example.com", config.BaseURL)
		assert.Equal(t, 5*time.Second, config.Timeout)
	})

	t.Run("config snapshot is idempotent", func(t *testing.T) {
		t.Parallel()

		client := careclient.New(nil)
		assert.Equal(t, client.Config(), client.Config())
	})
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	client := careclient.NewWithAPIKey("https://api.example.com", "test-token")

	assert.Equal(t, "https://api.example.com", client.Config().BaseURL)
	assert.Equal(t, "test-token", client.Config().APIKey)

	client.SetAPIKey("other")
	assert.Equal(t, "other", client.Config().APIKey)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "careapi-test/1.0", request.Header.Get("User-Agent"))

		switch request.URL.Path {
		case "/auth/login":
			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"accessToken":"fresh","refreshToken":"r1","expiresIn":3600}`))
		case "/auth/me":
			if request.Header.Get("Authorization") != "Bearer fresh" {
				writer.WriteHeader(http.StatusUnauthorized)

				return
			}

			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"id":"u1","email":"jane@example.com","isActive":true}`))
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := careclient.New(careapi.NewConfig(careapi.WithBaseURL(server.URL)),
		careclient.WithUserAgent("careapi-test/1.0"),
		careclient.WithHTTPClient(server.Client()),
	)

	_, err := client.Auth().Me(context.Background())
	require.Error(t, err)
	assert.True(t, careapi.IsAuthenticationFailed(err))

	auth, err := client.Auth().Login(context.Background(), &careapi.LoginRequest{Email: "jane@example.com", Password: "secret"})
	require.NoError(t, err)

	client.SetAPIKey(auth.AccessToken)

	user, err := client.Auth().Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

//nolint:paralleltest // Mutates the process-wide default client.
func TestDefault(t *testing.T) {
	careclient.ResetDefault()
	t.Cleanup(careclient.ResetDefault)

	client, err := careclient.Default()
	require.ErrorIs(t, err, careclient.ErrNotInitialized)
	assert.Nil(t, client)

	require.NoError(t, careclient.Init(careapi.NewConfig(careapi.WithAPIKey("k1"))))

	first, err := careclient.Default()
	require.NoError(t, err)
	assert.Equal(t, "k1", first.Config().APIKey)

	err = careclient.Init(careapi.NewConfig(careapi.WithAPIKey("k2")))
	require.ErrorIs(t, err, careclient.ErrAlreadyInitialized)

	second, err := careclient.Default()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, "k1", second.Config().APIKey)
}
