// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Calendar CalendarConfig `toml:"calendar"`
	Couple   CoupleConfig   `toml:"couple"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// CalendarConfig holds calendar view settings.
type CalendarConfig struct {
	DefaultMode string `toml:"default_mode"` // "month" or "week"
}

// CoupleConfig names the two people sharing the journal.
type CoupleConfig struct {
	Partners      []string `toml:"partners"`
	DefaultAuthor string   `toml:"default_author"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "latte", "rose"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
	Path  string `toml:"path"`  // empty disables logging
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			DefaultMode: "month",
		},
		Couple: CoupleConfig{
			Partners:      []string{},
			DefaultAuthor: defaultAuthor(),
		},
		Storage: StorageConfig{
			DBPath: filepath.Join(dataDir(), "together.db"),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
		Log: LogConfig{
			Level: "info",
			Path:  filepath.Join(dataDir(), "together.log"),
		},
	}
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "together")
}

func defaultAuthor() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "me"
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "together", "config.toml")
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
	cfg.Log.Path = expandPath(cfg.Log.Path)

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
			return nil
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
	if v := os.Getenv("TOGETHER_DEFAULT_MODE"); v != "" {
		cfg.Calendar.DefaultMode = v
	}
	if v := os.Getenv("TOGETHER_PARTNERS"); v != "" {
		cfg.Couple.Partners = splitList(v)
	}
	if v := os.Getenv("TOGETHER_AUTHOR"); v != "" {
		cfg.Couple.DefaultAuthor = v
	}
	if v := os.Getenv("TOGETHER_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("TOGETHER_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("TOGETHER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv("TOGETHER_LOG_PATH"); ok {
		cfg.Log.Path = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
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

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Calendar.DefaultMode {
	case "month", "week":
	default:
		return fmt.Errorf("default_mode must be \"month\" or \"week\", got %q", c.Calendar.DefaultMode)
	}

	if len(c.Couple.Partners) > 2 {
		return errors.New("at most two partners can be configured")
	}
	if c.Couple.DefaultAuthor == "" {
		return errors.New("default_author must be set")
	}
	if len(c.Couple.Partners) > 0 && !c.IsPartner(c.Couple.DefaultAuthor) {
		return fmt.Errorf("default_author %q is not one of the partners", c.Couple.DefaultAuthor)
	}

	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	return nil
}

// IsPartner reports whether name is a configured partner (case-insensitive).
func (c *Config) IsPartner(name string) bool {
	for _, p := range c.Couple.Partners {
		if strings.EqualFold(p, name) {
			return true
		}
	}
	return false
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
