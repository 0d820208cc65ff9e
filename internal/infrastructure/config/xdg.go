package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "readably"
	databaseName = "readably.sqlite"
	configName   = "config.toml"
)

// Dirs are the per-user directories readably reads and writes.
type Dirs struct {
	// Config is $XDG_CONFIG_HOME/readably.
	Config string
	// Data is $XDG_DATA_HOME/readably. Settings and the interaction log are
	// user data, not configuration, so the database lives here.
	Data string
}

// ResolveDirs applies the XDG Base Directory rules. With ENV=dev both
// directories collapse to ./.dev/readably.
func ResolveDirs() (Dirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return Dirs{}, err
		}
		dev := filepath.Join(cwd, ".dev", appName)
		return Dirs{Config: dev, Data: dev}, nil
	}

	configHome, err := xdgHome("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return Dirs{}, err
	}
	dataHome, err := xdgHome("XDG_DATA_HOME", filepath.Join(".local", "share"))
	if err != nil {
		return Dirs{}, err
	}
	return Dirs{
		Config: filepath.Join(configHome, appName),
		Data:   filepath.Join(dataHome, appName),
	}, nil
}

// xdgHome returns $env, or fallback under the home directory when unset.
func xdgHome(env, fallback string) (string, error) {
	if v := os.Getenv(env); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback), nil
}

// ConfigFile is the main TOML file.
func (d Dirs) ConfigFile() string { return filepath.Join(d.Config, configName) }

// DatabaseFile is the preferences database.
func (d Dirs) DatabaseFile() string { return filepath.Join(d.Data, databaseName) }

// LogDir holds rotated log files.
func (d Dirs) LogDir() string { return filepath.Join(d.Data, "logs") }

// ManDir is the per-user section 1 man page directory, a sibling of Data.
func (d Dirs) ManDir() string { return filepath.Join(filepath.Dir(d.Data), "man", "man1") }

// GetDatabaseFile resolves the default database path.
func GetDatabaseFile() (string, error) {
	dirs, err := ResolveDirs()
	if err != nil {
		return "", err
	}
	return dirs.DatabaseFile(), nil
}

// GetManDir resolves the default man page directory.
func GetManDir() (string, error) {
	dirs, err := ResolveDirs()
	if err != nil {
		return "", err
	}
	return dirs.ManDir(), nil
}
