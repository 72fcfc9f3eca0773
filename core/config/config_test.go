package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 4, cfg.Server.BodyLimitMB)
	assert.Equal(t, "captures", cfg.Storage.Bucket)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 300, cfg.Replay.CacheTTLSeconds)
	assert.Equal(t, "title,medal", cfg.Replay.ExcludedBuckets)
	assert.Empty(t, cfg.Replay.HistoryStart)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("REPLAY_HISTORY_START", "2023-12-21")
	t.Setenv("REPLAY_CACHE_TTL_SECONDS", "0")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "2023-12-21", cfg.Replay.HistoryStart)
	assert.Zero(t, cfg.Replay.CacheTTLSeconds)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	// Registered so the variables godotenv sets are restored afterwards.
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("STORAGE_BUCKET", "")

	dir := t.TempDir()
	content := "LOG_LEVEL=debug\nSTORAGE_BUCKET=gear-captures\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "gear-captures", cfg.Storage.Bucket)
}

func TestConfig_Validate(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	cfg.Database.Driver = "oracle"
	assert.ErrorContains(t, cfg.Validate(), "unsupported database driver")

	cfg.Database.Driver = "sqlite"
	cfg.Replay.HistoryStart = "yesterday"
	assert.ErrorContains(t, cfg.Validate(), "invalid replay history start")
}
