package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbarbosa/cvgen/internal/config"
)

func TestNew_DisabledSinkLogsNowhere(t *testing.T) {
	dir := t.TempDir()
	disabled := false
	logger, closer, err := New(config.LoggingSettings{Enabled: &disabled}, dir)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("dropped")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNew_WritesJSONRecordsToSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, closer, err := New(config.LoggingSettings{Level: "INFO"}, dir)
	require.NoError(t, err)

	logger.Info("starting CV generation workflow", "event", "app_start", "request_id", "abcd1234")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(filepath.Join(dir, "cvgen.log"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"event":"app_start"`)
	assert.Contains(t, string(raw), `"request_id":"abcd1234"`)
}

func TestNew_LevelFiltersDebugRecords(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, closer, err := New(config.LoggingSettings{Level: "INFO"}, dir)
	require.NoError(t, err)

	logger.Debug("noise")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(filepath.Join(dir, "cvgen.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "noise")
}
