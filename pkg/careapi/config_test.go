package careapi_test

import (
	"testing"
	"time"

	"github.com/fivetwenty-io/careapi/pkg/careapi"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	config := careapi.DefaultConfig()

	assert.Equal(t, "https://api.careapi.io", config.BaseURL)
	assert.Empty(t, config.APIKey)
	assert.False(t, config.HasAPIKey())
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.NotNil(t, config.Headers)
	assert.Empty(t, config.Headers)
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	config := careapi.NewConfig(
		careapi.WithBaseURL("https://api.example.com"),
		careapi.WithAPIKey("k1"),
		careapi.WithTimeout(5*time.Second),
		careapi.WithHeader("X-Clinic", "north"),
		careapi.WithHeaders(map[string]string{"X-Trace": "abc"}),
	)

	assert.Equal(t, "https://api.example.com", config.BaseURL)
	assert.Equal(t, "k1", config.APIKey)
	assert.True(t, config.HasAPIKey())
	assert.Equal(t, 5*time.Second, config.Timeout)
	assert.Equal(t, map[string]string{"X-Clinic": "north", "X-Trace": "abc"}, config.Headers)
}

func TestConfig_Normalized(t *testing.T) {
	t.Parallel()

	t.Run("nil config yields defaults", func(t *testing.T) {
		t.Parallel()

		var config *careapi.Config

		assert.Equal(t, *careapi.DefaultConfig(), config.Normalized())
	})

	t.Run("zero fields are filled", func(t *testing.T) {
		t.Parallel()

		config := &careapi.Config{APIKey: "k1"}
		normalized := config.Normalized()

		assert.Equal(t, "https://api.careapi.io", normalized.BaseURL)
		assert.Equal(t, 30*time.Second, normalized.Timeout)
		assert.Equal(t, "k1", normalized.APIKey)
		assert.NotNil(t, normalized.Headers)
	})

	t.Run("trailing slash is trimmed", func(t *testing.T) {
		t.Parallel()

		config := careapi.NewConfig(careapi.WithBaseURL("https://api.example.com/"))

		assert.Equal(t, "https://api.example.com", config.Normalized().BaseURL)
	})

	t.Run("headers are copied", func(t *testing.T) {
		t.Parallel()

		config := careapi.NewConfig(careapi.WithHeader("X-Clinic", "north"))
		normalized := config.Normalized()
		normalized.Headers["X-Clinic"] = "south"

		assert.Equal(t, "north", config.Headers["X-Clinic"])
	})
}
