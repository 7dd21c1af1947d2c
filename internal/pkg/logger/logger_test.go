package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel(" DEBUG "))
	assert.Equal(t, WarnLevel, ParseLevel("warning"))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
}

func TestConfigure_JSONOutputAndLevel(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(func() { Configure(Config{Level: InfoLevel}) })

	Configure(Config{Level: WarnLevel, Output: &buf})
	Info().Msg("hidden")
	componentLogger := WithComponent("uploads")
	componentLogger.Warn().Str("field", "image").Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "uploads", entry["component"])
	assert.Equal(t, "memi-api", entry["service"])
}
