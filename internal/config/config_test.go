package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingDotenv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(missingDotenv(t))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, DefaultAccessCode, cfg.AccessCode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 200*time.Millisecond, cfg.CardDelay)
	assert.Empty(t, cfg.DBPath)
	assert.Empty(t, cfg.BankPath)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PARKGOLF_DB", "/tmp/pg.db")
	t.Setenv("PARKGOLF_ACCESS_CODE", "Birdie")
	t.Setenv("PARKGOLF_LOG_LEVEL", "debug")
	t.Setenv("PARKGOLF_CARD_DELAY", "0s")

	cfg, err := Load(missingDotenv(t))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/pg.db", cfg.DBPath)
	assert.Equal(t, "Birdie", cfg.AccessCode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Zero(t, cfg.CardDelay)
}

func TestLoad_Dotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PARKGOLF_BANK=/data/bank.json\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("PARKGOLF_BANK") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/bank.json", cfg.BankPath)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("PARKGOLF_CARD_DELAY", "soon")

	_, err := Load(missingDotenv(t))
	assert.Error(t, err)
}
