package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(ws, ".hiredesk"), 0755))
	require.NoError(t, Default().Save(ws))

	reloaded := make(chan *Config, 4)
	w, err := NewWatcher(ws, func(cfg *Config) { reloaded <- cfg })
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	cfg := Default()
	cfg.UI.Theme = "light"
	require.NoError(t, cfg.Save(ws))

	select {
	case got := <-reloaded:
		assert.Equal(t, "light", got.UI.Theme)
	case <-time.After(5 * time.Second):
		t.Fatal("reload callback never fired")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(ws, ".hiredesk"), 0755))

	reloaded := make(chan *Config, 4)
	w, err := NewWatcher(ws, func(cfg *Config) { reloaded <- cfg })
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(ws, ".hiredesk", "other.txt"), []byte("x"), 0644))

	select {
	case <-reloaded:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(1 * time.Second):
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	ws := t.TempDir()
	w, err := NewWatcher(ws, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	require.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}
