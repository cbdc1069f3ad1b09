package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// Config holds the few user-tunable knobs, read from
// ~/.mygymlog/config.toml when present
type Config struct {
	DataDir  string `toml:"data_dir"`
	LogLevel string `toml:"log_level"`
	LogsPath string `toml:"logs_path"`
	// MainLifts are the exercises charted by the trends screen
	MainLifts []string `toml:"main_lifts"`
}

// Default returns the configuration used when no config file exists
func Default() Config {
	dataDir := ".mygymlog"
	if homeDir, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(homeDir, ".mygymlog")
	}
	return Config{
		DataDir:   dataDir,
		LogLevel:  "info",
		LogsPath:  filepath.Join(dataDir, "mygymlog.log"),
		MainLifts: []string{"Bench Press", "Squat", "Deadlift"},
	}
}

// Load reads the config file, falling back to defaults when it is missing or
// unreadable. A broken config never stops the app.
func Load() Config {
	cfg := Default()

	path := filepath.Join(cfg.DataDir, "config.toml")
	if _, err := os.Stat(path); err != nil {
		return cfg
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		logrus.WithError(err).Warnf("ignoring unreadable config file %s", path)
		return Default()
	}
	if len(cfg.MainLifts) == 0 {
		cfg.MainLifts = Default().MainLifts
	}
	return cfg
}

// DatabasePath returns the path to the SQLite database file
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "mygymlog.db")
}
