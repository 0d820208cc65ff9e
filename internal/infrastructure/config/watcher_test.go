package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := isolateXDG(t)
	configFile := filepath.Join(dir, "watch.toml")
	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configFile))

	mgr, err := NewManager(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return mgr, configFile
}

func TestManager_WatchReloadsAfterWrite(t *testing.T) {
	mgr, configFile := loadedManager(t)

	offsets := make(chan int, 8)
	mgr.OnConfigChange(func(c *Config) { offsets <- c.Toggles.ZoomOffset })
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch())

	cfg := DefaultConfig()
	cfg.Toggles.ZoomOffset = 30
	require.NoError(t, WriteConfigOrdered(cfg, configFile))

	select {
	case got := <-offsets:
		assert.Equal(t, 30, got)
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not delivered")
	}
	assert.Equal(t, 30, mgr.Get().Toggles.ZoomOffset)
}

func TestManager_InvalidReloadKeepsPreviousConfig(t *testing.T) {
	mgr, configFile := loadedManager(t)

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	require.NoError(t, os.WriteFile(configFile, []byte("[toggles]\nzoom_offset = \"wide\"\n"), 0o600))
	require.Error(t, mgr.Reload())

	assert.False(t, called)
	assert.Equal(t, DefaultConfig().Toggles.ZoomOffset, mgr.Get().Toggles.ZoomOffset)
}

func TestManager_CallbacksGetIndependentCopies(t *testing.T) {
	mgr, _ := loadedManager(t)

	mgr.OnConfigChange(func(c *Config) { c.Toggles.ZoomOffset = -1 })
	var seen int
	mgr.OnConfigChange(func(c *Config) { seen = c.Toggles.ZoomOffset })

	require.NoError(t, mgr.Reload())
	assert.Equal(t, DefaultConfig().Toggles.ZoomOffset, seen)
	assert.Equal(t, DefaultConfig().Toggles.ZoomOffset, mgr.Get().Toggles.ZoomOffset)
}
