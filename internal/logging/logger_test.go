package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Options{AppName: "parkgolf", Env: "test", Level: "warn", Out: &buf})
	require.NoError(t, err)
	defer closer.Close()

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Level: "loud", Out: &buf})
	require.NoError(t, err)

	logger.Debug().Msg("debug line")
	logger.Info().Msg("info line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, closer, err := New(Options{AppName: "parkgolf", File: path})
	require.NoError(t, err)

	logger.Info().Str("user", "kim").Msg("profile set")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"user":"kim"`)
	assert.Contains(t, string(data), `"app":"parkgolf"`)
}

func TestContextRoundTrip(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := IntoContext(context.Background(), logger)

	l := FromContext(ctx)
	l.Info().Msg("via context")
	assert.Contains(t, buf.String(), "via context")
}

func TestDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	got, err := DefaultFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "parkgolf", "parkgolf.log"), got)
}
