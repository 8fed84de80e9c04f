// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/tomaslara/rangepick/internal/dateutil"
)

// Config holds the application configuration.
type Config struct {
	Picker  PickerConfig  `toml:"picker"`
	UI      UIConfig      `toml:"ui"`
	Storage StorageConfig `toml:"storage"`
}

// PickerConfig holds the date-range input settings.
type PickerConfig struct {
	Format           string `toml:"format"`             // e.g., "YYYY-MM-DD"
	MinDate          string `toml:"min_date"`           // inclusive lower bound, empty = unbounded
	MaxDate          string `toml:"max_date"`           // inclusive upper bound, empty = unbounded
	AllowSingleDay   bool   `toml:"allow_single_day"`   // permit start == end
	AllowUnbounded   bool   `toml:"allow_unbounded"`    // half-open range placeholders
	CloseOnSelection bool   `toml:"close_on_selection"` // close overlay once both ends chosen
	OpenOnFocus      bool   `toml:"open_on_focus"`
	SelectAllOnFocus bool   `toml:"select_all_on_focus"`
	Shortcuts        bool   `toml:"shortcuts"` // "today", "+3d", weekday names
	InvalidMessage   string `toml:"invalid_message"`
	OutOfRangeMsg    string `toml:"out_of_range_message"`
	OverlappingMsg   string `toml:"overlapping_message"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Picker: PickerConfig{
			Format:           dateutil.DefaultFormat,
			AllowSingleDay:   true,
			CloseOnSelection: true,
			OpenOnFocus:      true,
			Shortcuts:        true,
		},
		UI: UIConfig{
			Theme: "mocha",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rangepick.db"
	}
	return filepath.Join(home, ".local", "share", "rangepick", "rangepick.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "rangepick", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RANGEPICK_FORMAT"); v != "" {
		cfg.Picker.Format = v
	}
	if v := os.Getenv("RANGEPICK_MIN_DATE"); v != "" {
		cfg.Picker.MinDate = v
	}
	if v := os.Getenv("RANGEPICK_MAX_DATE"); v != "" {
		cfg.Picker.MaxDate = v
	}
	if v := os.Getenv("RANGEPICK_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("RANGEPICK_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Picker.Format) == "" {
		return fmt.Errorf("format must not be empty")
	}

	min, err := c.minDate()
	if err != nil {
		return err
	}
	max, err := c.maxDate()
	if err != nil {
		return err
	}
	if !min.IsZero() && !max.IsZero() && max.Before(min) {
		return fmt.Errorf("max_date %s is before min_date %s", c.Picker.MaxDate, c.Picker.MinDate)
	}

	if strings.TrimSpace(c.Storage.DBPath) == "" {
		return fmt.Errorf("db_path must not be empty")
	}

	return nil
}

func (c *Config) minDate() (time.Time, error) {
	return c.boundDate(c.Picker.MinDate, "min_date")
}

func (c *Config) maxDate() (time.Time, error) {
	return c.boundDate(c.Picker.MaxDate, "max_date")
}

// boundDate parses an optional bound under the configured format.
func (c *Config) boundDate(raw, name string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, nil
	}
	v := dateutil.Parse(raw, c.Picker.Format)
	if !v.IsSet() {
		return time.Time{}, fmt.Errorf("%s %q does not match format %q", name, raw, c.Picker.Format)
	}
	return v.Date, nil
}

// Bounds returns the parsed min/max dates. Call after Validate.
func (c *Config) Bounds() (min, max time.Time) {
	min, _ = c.minDate()
	max, _ = c.maxDate()
	return min, max
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
