package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Output     io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	return zerolog.New(consoleWriter(cfg)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues builds a logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	switch format {
	case "json", "console":
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// READABLY_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// READABLY_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("READABLY_LOG_LEVEL"), os.Getenv("READABLY_LOG_FORMAT"))
}

// FileConfig enables a rotated log file next to, or instead of, stderr.
type FileConfig struct {
	Enabled       bool
	WriteToStderr bool
	Rotator       RotatorConfig
}

// Loggers pairs the main logger with one that never writes to the terminal,
// for use while a full-screen UI owns it.
type Loggers struct {
	Main  zerolog.Logger
	Quiet zerolog.Logger
}

// NewWithFile creates the loggers. When file.Enabled is set both write JSON
// lines to one rotated file; Main also keeps cfg.Output (stderr by default)
// when file.WriteToStderr is set. Without a file Quiet discards everything.
// The returned cleanup closes the file.
func NewWithFile(cfg Config, file FileConfig) (Loggers, func(), error) {
	nop := func() {}
	if !file.Enabled {
		return Loggers{Main: New(cfg), Quiet: zerolog.Nop()}, nop, nil
	}

	rotator, err := NewRotator(file.Rotator)
	if err != nil {
		// Fall back to the console so nothing is lost.
		return Loggers{Main: New(cfg), Quiet: zerolog.Nop()}, nop, err
	}
	cleanup := func() { _ = rotator.Close() }

	quiet := zerolog.New(rotator).Level(cfg.Level).With().Timestamp().Logger()
	if !file.WriteToStderr {
		return Loggers{Main: quiet, Quiet: quiet}, cleanup, nil
	}

	multi := zerolog.MultiLevelWriter(consoleWriter(cfg), rotator)
	main := zerolog.New(multi).Level(cfg.Level).With().Timestamp().Logger()
	return Loggers{Main: main, Quiet: quiet}, cleanup, nil
}

func consoleWriter(cfg Config) io.Writer {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		return zerolog.ConsoleWriter{Out: out, TimeFormat: cfg.TimeFormat}
	}
	return out
}
