package careapi_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/careapi/pkg/careapi"
)

func TestZerologLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	var logger careapi.Logger = careapi.NewZerologLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))

	logger.Debug("hidden", nil)
	logger.Info("HTTP Request", map[string]interface{}{"method": "GET"})
	logger.Warn("API request failed", map[string]interface{}{"status_code": 404})
	logger.Error("boom", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var first map[string]interface{}

	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "info", first["level"])
	assert.Equal(t, "HTTP Request", first["message"])
	assert.Equal(t, "GET", first["method"])

	var second map[string]interface{}

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "warn", second["level"])
	assert.InDelta(t, 404, second["status_code"], 0)

	assert.Contains(t, lines[2], `"level":"error"`)
}
