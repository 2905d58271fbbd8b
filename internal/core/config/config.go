// Package config handles configuration loading and validation for tumble.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	History   HistoryConfig   `yaml:"history"`
	Sound     SoundConfig     `yaml:"sound"`
	TUI       TUIConfig       `yaml:"tui"`
	AssetsDir string          `yaml:"assets_dir"` // optional face artwork override directory
}

// AnimationConfig controls the roll animation timing.
type AnimationConfig struct {
	Steps      int `yaml:"steps"`       // transient faces shown per roll
	IntervalMS int `yaml:"interval_ms"` // delay between animation steps
}

// Interval returns the step delay as a duration.
func (a AnimationConfig) Interval() time.Duration {
	return time.Duration(a.IntervalMS) * time.Millisecond
}

// HistoryConfig controls how much roll history is surfaced.
type HistoryConfig struct {
	Display int `yaml:"display"` // entries shown in the history panel
}

// SoundConfig controls roll sound playback.
type SoundConfig struct {
	// Enabled uses *bool so nil means auto: play when a sound file is
	// available, stay silent otherwise.
	Enabled *bool  `yaml:"enabled"`
	File    string `yaml:"file"`    // path to the sound asset
	Command string `yaml:"command"` // player binary override (auto-detected when empty)
}

// IsEnabled reports whether sound playback is allowed.
func (s SoundConfig) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// TUIConfig holds presentation settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Animation: AnimationConfig{
			Steps:      5,
			IntervalMS: 100,
		},
		History: HistoryConfig{
			Display: 5,
		},
		TUI: TUIConfig{
			Theme: "tokyo-night",
		},
	}
}

// Load reads configuration from the given path, merging it over defaults.
// A missing file is not an error; defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
