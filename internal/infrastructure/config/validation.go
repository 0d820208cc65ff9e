package config

import (
	"fmt"
	"strings"

	"github.com/bnema/readably/internal/domain/entity"
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true, "disabled": true,
}

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateToggles(config)...)
	validationErrors = append(validationErrors, validatePopup(config)...)
	validationErrors = append(validationErrors, validateFetch(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !validLogLevels[config.Logging.Level] {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB <= 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be positive")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validateToggles(config *Config) []string {
	var validationErrors []string
	level := config.Toggles.ContrastLevel
	if level < 1 || level > entity.ContrastMax {
		validationErrors = append(validationErrors,
			fmt.Sprintf("toggles.contrast_level must be between 1 and %d", entity.ContrastMax))
	}
	if config.Toggles.ZoomOffset == 0 {
		validationErrors = append(validationErrors, "toggles.zoom_offset must not be 0")
	}
	if config.Toggles.ZoomOffset <= -100 {
		validationErrors = append(validationErrors, "toggles.zoom_offset must be greater than -100")
	}
	return validationErrors
}

func validatePopup(config *Config) []string {
	var validationErrors []string
	p := config.Popup
	if p.ZoomStep <= 0 {
		validationErrors = append(validationErrors, "popup.zoom_step must be positive")
	}
	if p.ZoomMin <= -100 {
		validationErrors = append(validationErrors, "popup.zoom_min must be greater than -100")
	}
	if p.ZoomMin >= p.ZoomMax {
		validationErrors = append(validationErrors, "popup.zoom_min must be less than popup.zoom_max")
	}
	if p.SpacingMax <= 0 {
		validationErrors = append(validationErrors, "popup.spacing_max must be positive")
	}
	if p.AlignMax <= 0 {
		validationErrors = append(validationErrors, "popup.align_max must be positive")
	}
	return validationErrors
}

func validateFetch(config *Config) []string {
	var validationErrors []string
	if config.Fetch.TimeoutSeconds <= 0 {
		validationErrors = append(validationErrors, "fetch.timeout_seconds must be positive")
	}
	if config.Fetch.RetryMax < 0 {
		validationErrors = append(validationErrors, "fetch.retry_max must be non-negative")
	}
	return validationErrors
}
