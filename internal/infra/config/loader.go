// Package config provides application configuration loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// LocalConfigFileName is the per-directory config looked up in the working
// directory, overriding the global file.
const LocalConfigFileName = ".missionctl.toml"

// Config is the resolved application configuration.
type Config struct {
	DataDir      string        // Where the durable records and logs live
	LogLevel     string        // debug / info / warn / error
	ScanInterval time.Duration // Due-date scan period
}

// fileConfig is the TOML shape of a config file. Zero values mean "not set".
type fileConfig struct {
	DataDir string `toml:"data_dir"`
	Log     struct {
		Level string `toml:"level"`
	} `toml:"log"`
	Scan struct {
		IntervalSeconds int `toml:"interval_seconds"`
	} `toml:"scan"`
}

// Loader loads configuration from TOML files.
type Loader struct {
	globalConfDir string // e.g. ~/.config/missionctl
	localDir      string // working directory holding an optional local file
}

// NewLoader creates a new Loader resolving the global config dir from the
// environment and looking for a local file in dir.
func NewLoader(dir string) *Loader {
	return &Loader{
		globalConfDir: defaultGlobalConfigDir(),
		localDir:      dir,
	}
}

// NewLoaderWithGlobalDir creates a Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(localDir, globalConfDir string) *Loader {
	return &Loader{
		globalConfDir: globalConfDir,
		localDir:      localDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "missionctl")
}

// DefaultDataDir returns the default durable storage directory.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "missionctl")
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:      DefaultDataDir(),
		LogLevel:     "info",
		ScanInterval: 60 * time.Second,
	}
}

// Load returns the merged configuration: defaults <- global file <- local
// file (later takes precedence). Missing files are fine; malformed TOML is
// an error.
func (l *Loader) Load() (Config, error) {
	cfg := Default()

	if l.globalConfDir != "" {
		globalPath := filepath.Join(l.globalConfDir, "config.toml")
		if err := mergeFile(&cfg, globalPath); err != nil {
			return Config{}, err
		}
	}

	if l.localDir != "" {
		localPath := filepath.Join(l.localDir, LocalConfigFileName)
		if err := mergeFile(&cfg, localPath); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// mergeFile overlays the settings from path onto cfg, ignoring absent files.
func mergeFile(cfg *Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(content, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.DataDir != "" {
		cfg.DataDir = fc.DataDir
	}
	if fc.Log.Level != "" {
		cfg.LogLevel = fc.Log.Level
	}
	if fc.Scan.IntervalSeconds > 0 {
		cfg.ScanInterval = time.Duration(fc.Scan.IntervalSeconds) * time.Second
	}
	return nil
}
