package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "Sistem Manajemen Data Siswa", cfg.App.Title)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	path := writeConfig(t, `
app:
  title: "Data Siswa SMA 1"
server:
  port: "9090"
  mode: "release"
  read_timeout: "5s"
logging:
  level: "debug"
  format: "pretty"
`)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "Data Siswa SMA 1", cfg.App.Title)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "5s", cfg.Server.ReadTimeout)
	assert.Equal(t, "10s", cfg.Server.WriteTimeout)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "pretty", cfg.Logging.Format)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"unknown mode", "server:\n  mode: staging\n", "unknown server mode"},
		{"bad duration", "server:\n  idle_timeout: soon\n", "invalid server idle_timeout format"},
		{"empty port", "server:\n  port: \" \"\n", "server port is required"},
		{"malformed yaml", "server: [", "failed to parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GO_ENV", "test")

			_, err := LoadConfig(writeConfig(t, tt.content))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestProcessStructFields(t *testing.T) {
	var target struct {
		Name    string `env:"TEST_SISWA_NAME"`
		Workers int    `env:"TEST_SISWA_WORKERS"`
		Debug   bool   `env:"TEST_SISWA_DEBUG"`
		Nested  struct {
			Value string `env:"TEST_SISWA_NESTED"`
		}
		Untagged string
	}
	t.Setenv("TEST_SISWA_NAME", "siswa")
	t.Setenv("TEST_SISWA_WORKERS", "4")
	t.Setenv("TEST_SISWA_DEBUG", "true")
	t.Setenv("TEST_SISWA_NESTED", "inner")

	require.NoError(t, processStructFields(&target))
	assert.Equal(t, "siswa", target.Name)
	assert.Equal(t, 4, target.Workers)
	assert.True(t, target.Debug)
	assert.Equal(t, "inner", target.Nested.Value)
	assert.Empty(t, target.Untagged)

	t.Setenv("TEST_SISWA_WORKERS", "many")
	assert.Error(t, processStructFields(&target))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_SISWA_SET", "")

	assert.Equal(t, "", GetEnv("TEST_SISWA_SET", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TEST_SISWA_UNSET_VARIABLE", "fallback"))
}
