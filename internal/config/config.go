// Package config handles XDG data directory and file paths.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "tasker"

	// DataFile is the task collection filename.
	DataFile = "tasks.json"
)

// Config holds resolved paths and common settings.
type Config struct {
	// Dir is the data directory path.
	Dir string

	// File overrides the task file path when non-empty (--file flag).
	// The core packages never read it from the environment; the path is
	// handed to storage at construction time.
	File string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config with the default or specified data directory.
// If dataDir is empty, uses XDG_DATA_HOME/tasker or
// $HOME/.local/share/tasker.
func New(dataDir string) (*Config, error) {
	dir := dataDir
	if dir == "" {
		dir = DefaultDataDir()
	}
	return &Config{Dir: dir}, nil
}

// DefaultDataDir returns the default data directory.
// Uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// DataPath returns the task file path: the --file override when set,
// otherwise the file inside the data directory.
func (c *Config) DataPath() string {
	if c.File != "" {
		return c.File
	}
	return filepath.Join(c.Dir, DataFile)
}

// EnsureDir creates the data directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
