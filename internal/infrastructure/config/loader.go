// Package config loads, validates and watches the readably configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/readably/internal/logging"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool

	// pending is the debounced reload scheduled by the file watcher.
	pendingMu sync.Mutex
	pending   *time.Timer
}

// NewManager creates a new configuration manager. An empty configFile selects
// $XDG_CONFIG_HOME/readably/config.toml.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if configFile == "" {
		dirs, err := ResolveDirs()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		configFile = dirs.ConfigFile()
	}
	v.SetConfigFile(configFile)

	// READABLY_DATABASE_PATH, READABLY_TOGGLES_ZOOM_OFFSET, ...
	v.SetEnvPrefix("READABLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with logging.NewFromEnv
	if err := v.BindEnv("logging.level", "READABLY_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind READABLY_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "READABLY_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind READABLY_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if _, err := os.Stat(m.configFile); errors.Is(err, fs.ErrNotExist) {
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configFile,
				createErr,
			)
		}
	}

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}
	return nil
}

// decode unmarshals, completes, normalizes and validates the viper state.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}

	if err := fillPaths(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// fillPaths points empty path settings at their XDG locations.
func fillPaths(config *Config) error {
	if config.Database.Path != "" && config.Logging.LogDir != "" {
		return nil
	}
	dirs, err := ResolveDirs()
	if err != nil {
		return fmt.Errorf("failed to resolve data directory: %w", err)
	}
	if config.Database.Path == "" {
		config.Database.Path = dirs.DatabaseFile()
	}
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = dirs.LogDir()
	}
	return nil
}

func normalizeConfig(config *Config) {
	level := strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch level {
	case "":
		level = defaultLogLevel
	case "warning":
		level = "warn"
	case "off":
		level = "disabled"
	}
	config.Logging.Level = level

	switch LogFormat(strings.ToLower(string(config.Logging.Format))) {
	case LogFormatJSON:
		config.Logging.Format = LogFormatJSON
	default:
		config.Logging.Format = LogFormatConsole
	}

	config.Fetch.UserAgent = strings.TrimSpace(config.Fetch.UserAgent)
	if config.Fetch.UserAgent == "" {
		config.Fetch.UserAgent = defaultUserAgent
	}
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// createDefaultConfig writes the defaults to the config file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), m.configFile); err != nil {
		return err
	}

	log := logging.NewFromEnv()
	log.Info().Str("path", m.configFile).Msg("created default configuration file")
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Database.Path is resolved in decode()
	m.viper.SetDefault("database.path", "")

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", string(defaults.Logging.Format))
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	// Logging.LogDir is resolved in decode()
	m.viper.SetDefault("logging.log_dir", "")
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)

	m.viper.SetDefault("toggles.contrast_level", defaults.Toggles.ContrastLevel)
	m.viper.SetDefault("toggles.zoom_offset", defaults.Toggles.ZoomOffset)

	m.viper.SetDefault("popup.zoom_step", defaults.Popup.ZoomStep)
	m.viper.SetDefault("popup.zoom_min", defaults.Popup.ZoomMin)
	m.viper.SetDefault("popup.zoom_max", defaults.Popup.ZoomMax)
	m.viper.SetDefault("popup.spacing_max", defaults.Popup.SpacingMax)
	m.viper.SetDefault("popup.align_max", defaults.Popup.AlignMax)
	m.viper.SetDefault("popup.track_interactions", defaults.Popup.TrackInteractions)

	m.viper.SetDefault("fetch.timeout_seconds", defaults.Fetch.TimeoutSeconds)
	m.viper.SetDefault("fetch.retry_max", defaults.Fetch.RetryMax)
	m.viper.SetDefault("fetch.user_agent", defaults.Fetch.UserAgent)
}
