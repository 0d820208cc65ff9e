package config

// Config represents the complete configuration for readably.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging"`
	// Toggles sets the targets of the toggle actions.
	Toggles TogglesConfig `mapstructure:"toggles" toml:"toggles"`
	// Popup controls the terminal popup sliders.
	Popup PopupConfig `mapstructure:"popup" toml:"popup"`
	// Fetch controls how pages are downloaded.
	Fetch FetchConfig `mapstructure:"fetch" toml:"fetch"`
}

// DatabaseConfig holds the preferences database location.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/readably/readably.sqlite when empty.
	Path string `mapstructure:"path" toml:"path"`
}

// LogFormat selects the zerolog writer.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string    `mapstructure:"level" toml:"level"`
	Format LogFormat `mapstructure:"format" toml:"format"`

	// File output. The popup always logs to the file only, since its screen
	// is owned by the terminal UI.
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" toml:"max_age"`
	Compress      bool   `mapstructure:"compress" toml:"compress"`
}

// TogglesConfig holds the values applied by toggleHighContrast and toggleZoom.
type TogglesConfig struct {
	// ContrastLevel is applied when high contrast is toggled on (1-4).
	ContrastLevel int `mapstructure:"contrast_level" toml:"contrast_level"`
	// ZoomOffset is the zoom percent offset applied when zoom is toggled on.
	ZoomOffset int `mapstructure:"zoom_offset" toml:"zoom_offset"`
}

// PopupConfig holds slider ranges and steps.
type PopupConfig struct {
	ZoomStep   int `mapstructure:"zoom_step" toml:"zoom_step"`
	ZoomMin    int `mapstructure:"zoom_min" toml:"zoom_min"`
	ZoomMax    int `mapstructure:"zoom_max" toml:"zoom_max"`
	SpacingMax int `mapstructure:"spacing_max" toml:"spacing_max"`
	AlignMax   int `mapstructure:"align_max" toml:"align_max"`
	// TrackInteractions logs one interaction row per popup session.
	TrackInteractions bool `mapstructure:"track_interactions" toml:"track_interactions"`
}

// FetchConfig holds HTTP settings for remote pages.
type FetchConfig struct {
	TimeoutSeconds int    `mapstructure:"timeout_seconds" toml:"timeout_seconds"`
	RetryMax       int    `mapstructure:"retry_max" toml:"retry_max"`
	UserAgent      string `mapstructure:"user_agent" toml:"user_agent"`
}
