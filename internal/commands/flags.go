// Package commands contains the CLI commands for tumble.
package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/okardan/tumble/internal/core/config"
)

// Flags holds global flag values shared by all commands.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands.
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tumble", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state
// directory. On macOS: ~/Library/Logs/tumble/tumble.log. On Linux:
// $XDG_STATE_HOME/tumble/tumble.log (defaults to ~/.local/state/...).
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "tumble", "tumble.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "tumble", "tumble.log")
	}

	return filepath.Join(home, ".local", "state", "tumble", "tumble.log")
}
