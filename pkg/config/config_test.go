package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "data/priorities.db", cfg.Database.Path)
	assert.Equal(t, time.Hour, cfg.Database.ConnectionMaxLifetime)
	assert.False(t, cfg.Redis.Enabled)
	assert.Empty(t, cfg.Backup.Schedule)
	assert.Equal(t, 14, cfg.Backup.Keep)
	assert.Equal(t, uint16(1), cfg.ID.WorkerID)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
storage:
  driver: memory
backup:
  schedule: "@daily"
  keep: 3
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "@daily", cfg.Backup.Schedule)
	assert.Equal(t, 3, cfg.Backup.Keep)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PRIORITIES_STORAGE_DRIVER", "redis")
	t.Setenv("PRIORITIES_REDIS_PORT", "6380")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, 6380, cfg.Redis.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
