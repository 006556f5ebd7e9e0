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
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
port = 5433
user = "boarding"
password = "secret"
dbname = "ph_boarding"
sslmode = "require"

[booking]
max_retries = 5
lock_timeout_ms = 1500

[logs]
file = "logs/test.log"
level = "debug"

[metrics]
enabled = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5, cfg.Booking.MaxRetries)
	assert.Equal(t, 1500, cfg.Booking.LockTimeoutMS)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)

	assert.Equal(t,
		"host=db.internal port=5433 user=boarding password=secret dbname=ph_boarding sslmode=require",
		cfg.Database.DSN())
}

func TestLoad_DefaultsFillGaps(t *testing.T) {
	path := writeConfig(t, `
[database]
user = "boarding"
dbname = "ph_boarding"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3, cfg.Booking.MaxRetries)
	assert.Equal(t, 3000, cfg.Booking.LockTimeoutMS)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		path := writeConfig(t, `
[database]
dbname = "ph_boarding"
`)
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("bad port", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 99999

[database]
user = "boarding"
dbname = "ph_boarding"
`)
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("zero retries", func(t *testing.T) {
		path := writeConfig(t, `
[database]
user = "boarding"
dbname = "ph_boarding"

[booking]
max_retries = 0
`)
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
