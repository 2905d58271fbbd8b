package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/okardan/tumble/internal/core/styles"
)

// Animation interval bounds. Below 10ms the animation is a blur and the
// event loop churns; above 2s a five-step roll feels stalled.
const (
	minIntervalMS = 10
	maxIntervalMS = int(2 * time.Second / time.Millisecond)
)

// maxHistoryDisplay caps the history panel so it stays a short strip.
const maxHistoryDisplay = 20

// Validate checks structural correctness of the configuration.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		c.validateRanges(),
		criterio.Run("tui.theme", c.TUI.Theme, themeExists),
		criterio.Run("assets_dir", c.AssetsDir, isDirectoryOrEmpty),
	)
}

func (c *Config) validateRanges() error {
	var errs criterio.FieldErrorsBuilder

	if c.Animation.Steps < 1 {
		errs = errs.Append("animation.steps", fmt.Errorf("must be at least 1, got %d", c.Animation.Steps))
	}
	if c.Animation.IntervalMS < minIntervalMS || c.Animation.IntervalMS > maxIntervalMS {
		errs = errs.Append("animation.interval_ms",
			fmt.Errorf("must be between %d and %d, got %d", minIntervalMS, maxIntervalMS, c.Animation.IntervalMS))
	}
	if c.History.Display < 1 || c.History.Display > maxHistoryDisplay {
		errs = errs.Append("history.display",
			fmt.Errorf("must be between 1 and %d, got %d", maxHistoryDisplay, c.History.Display))
	}

	return errs.ToError()
}

func themeExists(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

// isDirectoryOrEmpty validates that a configured assets path points at a
// directory. The contents are checked separately at asset load time.
func isDirectoryOrEmpty(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}
