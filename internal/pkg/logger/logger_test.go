package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromStrings(t *testing.T) {
	tests := []struct {
		level, format string
		want          Config
	}{
		{"debug", "json", Config{Level: DebugLevel}},
		{" WARN ", "pretty", Config{Level: WarnLevel, Pretty: true}},
		{"error", "Console", Config{Level: ErrorLevel, Pretty: true}},
		{"", "", Config{Level: ""}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ConfigFromStrings(tt.level, tt.format), "%q/%q", tt.level, tt.format)
	}
}

func TestConfigure(t *testing.T) {
	defer Configure(Config{Level: InfoLevel, Pretty: true})

	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})

	Info().Msg("dropped")
	log := Get()
	log.Warn().Str("component", "students").Msg("kept")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "students", entry["component"])
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestZerologLevel_DefaultsToInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, zerologLevel("verbose"))
	assert.Equal(t, zerolog.DebugLevel, zerologLevel(DebugLevel))
}
