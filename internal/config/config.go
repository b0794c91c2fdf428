/**
 * CONTEXT:   Configuration loading for default session durations
 * INPUT:     config.toml at the resolved config directory, with environment overrides
 * OUTPUT:    A validated Config with focus/break durations, falling back to documented defaults
 * BUSINESS:  Unknown keys are ignored so the file can be shared with other tools
 * CHANGE:    Initial implementation
 * RISK:      Low - configuration parsing only, invalid values are reported as Parse errors
 */

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultFocusDuration = 25 * time.Minute
	DefaultBreakDuration = 5 * time.Minute
)

// Config holds the user-configurable default session durations.
type Config struct {
	FocusDuration time.Duration
	BreakDuration time.Duration
}

// fileFormat mirrors config.toml's two recognized keys. Unknown keys
// decode into nothing and are silently ignored, as go-toml/v2 does not
// error on unrecognized fields by default.
type fileFormat struct {
	FocusDuration string `toml:"focus_duration"`
	BreakDuration string `toml:"break_duration"`
}

// Default returns the built-in defaults (25m focus, 5m break).
func Default() Config {
	return Config{
		FocusDuration: DefaultFocusDuration,
		BreakDuration: DefaultBreakDuration,
	}
}

// Load reads configPath if present, applies it over the defaults, then
// applies POMODORO_FOCUS_DURATION / POMODORO_BREAK_DURATION environment
// overrides. A missing file is not an error; a malformed one is.
func Load(configPath string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg)
		}
		return Config{}, fmt.Errorf("read config %s: %w", configPath, err)
	}

	var ff fileFormat
	if err := toml.Unmarshal(data, &ff); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", configPath, err)
	}

	if ff.FocusDuration != "" {
		d, err := ParseHumanDuration(ff.FocusDuration)
		if err != nil {
			return Config{}, fmt.Errorf("config focus_duration: %w", err)
		}
		cfg.FocusDuration = d
	}
	if ff.BreakDuration != "" {
		d, err := ParseHumanDuration(ff.BreakDuration)
		if err != nil {
			return Config{}, fmt.Errorf("config break_duration: %w", err)
		}
		cfg.BreakDuration = d
	}

	return applyEnv(cfg)
}

func applyEnv(cfg Config) (Config, error) {
	if v := os.Getenv("POMODORO_FOCUS_DURATION"); v != "" {
		d, err := ParseHumanDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("POMODORO_FOCUS_DURATION: %w", err)
		}
		cfg.FocusDuration = d
	}
	if v := os.Getenv("POMODORO_BREAK_DURATION"); v != "" {
		d, err := ParseHumanDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("POMODORO_BREAK_DURATION: %w", err)
		}
		cfg.BreakDuration = d
	}
	return cfg, nil
}

// ParseHumanDuration parses a human-readable duration such as "25m" or
// "1h30m" into a positive duration. time.ParseDuration already accepts
// exactly this syntax, so no third-party duration parser is needed here.
func ParseHumanDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %q", s)
	}
	return d, nil
}
