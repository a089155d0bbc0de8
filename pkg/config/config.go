// Package config provides TOML-based configuration for salespulse.
package config

import (
	"fmt"
	"time"

	"github.com/salespulse/salespulse/pkg/theme"
)

// Config is the root configuration document.
type Config struct {
	General GeneralConfig `toml:"general"`
	Data    DataConfig    `toml:"data"`
	UI      UIConfig      `toml:"ui"`
}

// GeneralConfig holds process-level settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
}

// DataConfig controls where the order report comes from and how it is
// parsed.
type DataConfig struct {
	// CSVPath is the order report to load. Empty means the dashboard
	// starts with the bundled demo data.
	CSVPath string `toml:"csv_path"`
	// DateFormat is a Go reference-time layout for the report's Date
	// column.
	DateFormat string `toml:"date_format"`
	// Refresh is how often the report file is re-read while the
	// dashboard runs. Zero disables reloading.
	Refresh Duration `toml:"refresh"`
}

// UIConfig controls the dashboard's appearance.
type UIConfig struct {
	Theme string `toml:"theme"`
	// NarrowWidth overrides the column count below which the layout
	// collapses to the stacked single-column arrangement. Zero keeps
	// the built-in breakpoint.
	NarrowWidth int `toml:"narrow_width"`
	// TopN caps the ranking charts (top categories, top cities).
	TopN int `toml:"top_n"`
}

// Duration wraps time.Duration with TOML-friendly string parsing.
// Supports standard Go duration strings: "30s", "5m", "1h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Validate checks the configuration for values the dashboard cannot
// work with.
func (c *Config) Validate() error {
	switch c.General.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.General.LogLevel)
	}
	if c.UI.TopN <= 0 {
		return fmt.Errorf("config: top_n must be positive, got %d", c.UI.TopN)
	}
	if c.UI.NarrowWidth < 0 {
		return fmt.Errorf("config: narrow_width must not be negative, got %d", c.UI.NarrowWidth)
	}
	found := false
	for _, name := range theme.Names() {
		if name == c.UI.Theme {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config: unknown theme %q (have %v)", c.UI.Theme, theme.Names())
	}
	return nil
}
