package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartupLogger(t *testing.T) {
	var buf bytes.Buffer
	l := startupLogger(&buf)
	l.Error().Err(errors.New("missing LIGHTBNB_DATABASE.HOST")).Msg("failed to load config")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, config.ServiceName, entry["service"])
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "missing LIGHTBNB_DATABASE.HOST", entry["error"])
	assert.Contains(t, entry, "time")
}
