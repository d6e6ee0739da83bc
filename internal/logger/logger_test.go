package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "household.log")

	log, err := New("production", false, path)
	require.NoError(t, err)
	log.With("family", "newards").Info("child added", "members", 3)
	log.Debug("hidden")
	log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"child added"`)
	assert.Contains(t, string(data), `"family":"newards"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	log, err := New("production", true, path)
	require.NoError(t, err)
	log.Debug("visible")
	log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.Warn("dropped", "k", "v")
		log.Sync()
	})
}
