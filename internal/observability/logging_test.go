package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/shift-profile-service/internal/config"
)

func TestNewLogger_CreatesLogDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := NewLogger(config.LoggerConfig{Level: "info", Dir: dir, Filename: "main.log"})
	require.NoError(t, err)
	defer logger.Sync() //nolint:errcheck

	logger.Info("hello")

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = os.Stat(filepath.Join(dir, "main.log"))
	assert.NoError(t, err)
}

func TestNewLogger_PathOccupiedByFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, os.WriteFile(path, []byte("in the way"), 0o644))

	_, err := NewLogger(config.LoggerConfig{Level: "info", Dir: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "isn't a directory")
}

func TestNewLogger_InvalidLevelFallsBack(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := NewLogger(config.LoggerConfig{Level: "shouting", Dir: dir})
	require.NoError(t, err)
	defer logger.Sync() //nolint:errcheck
}
