package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The logger is package state, so these tests do not run in parallel.

func TestInitAt_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitAt(dir, "debug"))
	t.Cleanup(Close)

	assert.Equal(t, filepath.Join(dir, "debug.log"), GetLogPath())
	assert.Equal(t, logrus.DebugLevel, Logger().GetLevel())

	LogInfo("dealt %d hands", 4)
	LogError("lost %s", "connection")
	LogPanic("boom")
	Close()

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "Logger initialized")
	assert.Contains(t, out, "dealt 4 hands")
	assert.Contains(t, out, "level=error")
	assert.Contains(t, out, "panic: boom")
}

func TestInitAt_RejectsBadLevel(t *testing.T) {
	err := InitAt(t.TempDir(), "loud")
	assert.Error(t, err)
}

func TestInitAt_RotatesLargeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "debug.log")
	require.NoError(t, os.WriteFile(path, make([]byte, maxLogSize+1), 0o644))

	require.NoError(t, InitAt(dir, "info"))
	Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "debug.log.") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}

func TestLogger_DiscardsBeforeInit(t *testing.T) {
	Close()
	assert.NotNil(t, Logger())
	assert.NotPanics(t, func() { LogInfo("nobody is listening") })
}
