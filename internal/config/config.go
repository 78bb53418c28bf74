package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Source modes, chosen by configuration rather than runtime type inspection.
const (
	ModeScrape   = "scrape"
	ModeSimulate = "simulate"
)

// Config holds all application configuration.
type Config struct {
	Store struct {
		DataFile string `yaml:"data_file"`
	} `yaml:"store"`
	Source struct {
		Mode           string `yaml:"mode"`
		UserAgent      string `yaml:"user_agent"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		Seed           int64  `yaml:"seed"` // 0 = wall-clock seed
	} `yaml:"source"`
	Tracker struct {
		MaxHistory      int     `yaml:"max_history"`
		DefaultBaseline float64 `yaml:"default_baseline"`
	} `yaml:"tracker"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DATA_FILE"); v != "" {
		cfg.Store.DataFile = v
	}
	if v := os.Getenv("SOURCE_MODE"); v != "" {
		cfg.Source.Mode = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("DEFAULT_BASELINE"); v != "" {
		if baseline, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Tracker.DefaultBaseline = baseline
		}
	}

	// Defaults
	if cfg.Store.DataFile == "" {
		cfg.Store.DataFile = "data/catalog.json"
	}
	if cfg.Source.Mode == "" {
		cfg.Source.Mode = ModeSimulate
	}
	if cfg.Source.UserAgent == "" {
		cfg.Source.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	}
	if cfg.Source.TimeoutSeconds == 0 {
		cfg.Source.TimeoutSeconds = 10
	}
	if cfg.Tracker.MaxHistory == 0 {
		cfg.Tracker.MaxHistory = 365
	}
	if cfg.Tracker.DefaultBaseline == 0 {
		cfg.Tracker.DefaultBaseline = 100
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 8 * * *"
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	if c.Store.DataFile == "" {
		return fmt.Errorf("store.data_file is required")
	}
	if c.Source.Mode != ModeScrape && c.Source.Mode != ModeSimulate {
		return fmt.Errorf("source.mode must be %q or %q, got %q", ModeScrape, ModeSimulate, c.Source.Mode)
	}
	if c.Tracker.MaxHistory <= 0 {
		return fmt.Errorf("tracker.max_history must be positive")
	}
	if c.Tracker.DefaultBaseline <= 0 {
		return fmt.Errorf("tracker.default_baseline must be positive")
	}
	return nil
}
