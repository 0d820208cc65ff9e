package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bnema/readably/internal/infrastructure/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeveledAdapter_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	adapter := logging.NewLeveledAdapter(&logger)

	adapter.Warn("retrying request", "url", "http://example.test", "attempt", 2, 42, "ignored")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "retrying request", entry["message"])
	assert.Equal(t, "http://example.test", entry["url"])
	assert.EqualValues(t, 2, entry["attempt"])
}

func TestLeveledAdapter_DebugIsTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	adapter := logging.NewLeveledAdapter(&logger)

	adapter.Debug("performing request", "method", "GET")
	assert.Zero(t, buf.Len())
}
