package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// FileName is the per-directory config file
const FileName = ".salesboard.json"

// Config represents the full salesboard configuration
type Config struct {
	Source        SourceConfig `json:"source"`
	Seed          SeedConfig   `json:"seed"`
	Notifications NotifyConfig `json:"notifications"`
	Board         BoardConfig  `json:"board"`
	Log           LogConfig    `json:"log"`
}

// SourceConfig says where the raw task list comes from.
// URL wins over Path when both are set.
type SourceConfig struct {
	URL       string `json:"url"`
	Path      string `json:"path"`
	TimeoutMs int    `json:"timeoutMs"`
}

// SeedConfig controls synthetic data for an empty source
type SeedConfig struct {
	Count int `json:"count"`
}

// NotifyConfig contains snackbar and toast settings
type NotifyConfig struct {
	UndoTimeoutMs  int `json:"undoTimeoutMs"`
	ToastTimeoutMs int `json:"toastTimeoutMs"`
}

// BoardConfig contains display settings
type BoardConfig struct {
	HideMetrics bool   `json:"hideMetrics"`
	DefaultSort string `json:"defaultSort"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Path  string `json:"path"`
	Level string `json:"level"`
	Debug bool   `json:"debug"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Source: SourceConfig{
			Path:      "tasks.json",
			TimeoutMs: 5000,
		},
		Seed: SeedConfig{
			Count: 12,
		},
		Notifications: NotifyConfig{
			UndoTimeoutMs:  4000,
			ToastTimeoutMs: 3000,
		},
		Board: BoardConfig{
			DefaultSort: "roi",
		},
		Log: LogConfig{
			Path:  filepath.Join(homeDir, ".salesboard", "salesboard.log"),
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from project path with priority:
// 1. .salesboard.json in project root (with version migration support)
// 2. Defaults
func LoadConfig(projectPath string) (*Config, error) {
	path := filepath.Join(projectPath, FileName)
	if _, err := os.Stat(path); err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from an explicit file, which must exist
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := ParseVersionedConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return MergeWithDefaults(cfg), nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Source.URL == "" && cfg.Source.Path == "" {
		cfg.Source.Path = defaults.Source.Path
	}
	if cfg.Source.TimeoutMs <= 0 {
		cfg.Source.TimeoutMs = defaults.Source.TimeoutMs
	}

	// zero is a legitimate "no seed data" choice, only negatives are reset
	if cfg.Seed.Count < 0 {
		cfg.Seed.Count = defaults.Seed.Count
	}

	if cfg.Notifications.UndoTimeoutMs <= 0 {
		cfg.Notifications.UndoTimeoutMs = defaults.Notifications.UndoTimeoutMs
	}
	if cfg.Notifications.ToastTimeoutMs <= 0 {
		cfg.Notifications.ToastTimeoutMs = defaults.Notifications.ToastTimeoutMs
	}

	if cfg.Board.DefaultSort == "" {
		cfg.Board.DefaultSort = defaults.Board.DefaultSort
	}

	if cfg.Log.Path == "" {
		cfg.Log.Path = defaults.Log.Path
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}

// Location returns the source URL, or the path when no URL is set
func (c *Config) Location() string {
	if c.Source.URL != "" {
		return c.Source.URL
	}
	return c.Source.Path
}

// FetchTimeout is the limit for the initial load
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Source.TimeoutMs) * time.Millisecond
}

// UndoTimeout is how long the undo snackbar stays open
func (c *Config) UndoTimeout() time.Duration {
	return time.Duration(c.Notifications.UndoTimeoutMs) * time.Millisecond
}

// ToastTimeout is how long informational toasts stay open
func (c *Config) ToastTimeout() time.Duration {
	return time.Duration(c.Notifications.ToastTimeoutMs) * time.Millisecond
}

// LogLevel parses Log.Level, defaulting to info
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
