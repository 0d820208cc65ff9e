package config

import (
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/readably/internal/logging"
)

// reloadDelay coalesces the several writes an editor makes when saving.
const reloadDelay = 150 * time.Millisecond

// Watch reloads the config file whenever it changes on disk.
// Invalid edits are logged and the previous configuration is kept.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	m.viper.OnConfigChange(m.scheduleReload)
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

func (m *Manager) scheduleReload(e fsnotify.Event) {
	if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	m.pendingMu.Lock()
	defer m.pendingMu.Unlock()
	if m.pending != nil {
		m.pending.Stop()
	}
	m.pending = time.AfterFunc(reloadDelay, func() {
		log := logging.NewFromEnv()
		if err := m.Reload(); err != nil {
			log.Warn().Err(err).Str("file", e.Name).Msg("config change ignored")
			return
		}
		log.Debug().Str("file", e.Name).Msg("config reloaded")
	})
}

// OnConfigChange registers fn to receive a copy of each successfully reloaded config.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// Reload re-reads the config file and notifies callbacks on success.
// Callbacks run without the manager lock held.
func (m *Manager) Reload() error {
	m.mu.Lock()
	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		return err
	}
	cfg, err := m.decode()
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.config = cfg
	snapshot := *cfg
	callbacks := append([]func(*Config){}, m.callbacks...)
	m.mu.Unlock()

	for _, fn := range callbacks {
		c := snapshot
		fn(&c)
	}
	return nil
}
