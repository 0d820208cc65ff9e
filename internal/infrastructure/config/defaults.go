package config

// Default configuration constants
const (
	defaultLogLevel      = "info"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 14

	defaultContrastLevel = 4
	defaultZoomOffset    = 20

	defaultZoomStep   = 10
	defaultZoomMin    = -50
	defaultZoomMax    = 100
	defaultSpacingMax = 10
	defaultAlignMax   = 10

	defaultFetchTimeoutSeconds = 15
	defaultFetchRetryMax       = 3
	defaultUserAgent           = "readably/1 (+https://github.com/bnema/readably)"

	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     LogFormatConsole,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAge:     defaultLogMaxAgeDays,
			Compress:   true,
		},
		Toggles: TogglesConfig{
			ContrastLevel: defaultContrastLevel,
			ZoomOffset:    defaultZoomOffset,
		},
		Popup: PopupConfig{
			ZoomStep:          defaultZoomStep,
			ZoomMin:           defaultZoomMin,
			ZoomMax:           defaultZoomMax,
			SpacingMax:        defaultSpacingMax,
			AlignMax:          defaultAlignMax,
			TrackInteractions: true,
		},
		Fetch: FetchConfig{
			TimeoutSeconds: defaultFetchTimeoutSeconds,
			RetryMax:       defaultFetchRetryMax,
			UserAgent:      defaultUserAgent,
		},
	}
}
