package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[booking_api]
url = "https://booking.example.com/api/"
token = "file-token"
timeout = 5

[logs]
level = "debug"

[metrics]
enabled = false
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	t.Setenv(EnvBookingAPIToken, "")
	t.Setenv(EnvBookingAPIURL, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "https://booking.example.com/api", cfg.BookingAPI.URL)
	assert.Equal(t, "file-token", cfg.BookingAPI.Token)
	assert.Equal(t, 5, cfg.BookingAPI.Timeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)
	// значения по умолчанию сохраняются
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 30, cfg.Session.FetchTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvBookingAPIToken, "env-token")
	t.Setenv(EnvBookingAPIURL, "https://other.example.com")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.BookingAPI.Token)
	assert.Equal(t, "https://other.example.com", cfg.BookingAPI.URL)
}

func TestLoad_MissingTokenIsInvalid(t *testing.T) {
	t.Setenv(EnvBookingAPIToken, "")
	t.Setenv(EnvBookingAPIURL, "https://booking.example.com")
	t.Setenv(EnvLogLevel, "")

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_BrokenFile(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = "))
	assert.ErrorIs(t, err, ErrReadConfig)
}
