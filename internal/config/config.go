package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultLocale         = "en_US"
	defaultReportInterval = 24 * time.Hour
	defaultMigrationsPath = "migrations"
)

type Config struct {
	Token           string
	GuildID         string
	DatabaseURL     string // empty disables persistence
	MigrationsPath  string
	TranslationsDir string // empty uses the embedded catalogs
	DefaultLocale   string
	ReportChannelID string
	ReportInterval  time.Duration
	LogLevel        string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		Token:           os.Getenv("TOKEN"),
		GuildID:         os.Getenv("GUILD_ID"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		MigrationsPath:  os.Getenv("MIGRATIONS_PATH"),
		TranslationsDir: os.Getenv("TRANSLATIONS_DIR"),
		DefaultLocale:   os.Getenv("DEFAULT_LOCALE"),
		ReportChannelID: os.Getenv("REPORT_CHANNEL_ID"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
	}

	if raw := strings.TrimSpace(os.Getenv("REPORT_INTERVAL")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config: invalid REPORT_INTERVAL (%q): %w", raw, err)
		}
		cfg.ReportInterval = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies the rules and defaults to the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}

	if !digitsOnly(c.GuildID) {
		return fmt.Errorf("config: GUILD_ID must be a Discord guild ID (digits only)")
	}

	if !digitsOnly(c.ReportChannelID) {
		return fmt.Errorf("config: REPORT_CHANNEL_ID must be a Discord channel ID (digits only)")
	}

	if c.ReportInterval == 0 {
		c.ReportInterval = defaultReportInterval
	}
	if c.ReportInterval < time.Minute {
		return fmt.Errorf("config: REPORT_INTERVAL must be at least 1m, got %s", c.ReportInterval)
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = defaultLocale
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = defaultMigrationsPath
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		return nil
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	return nil
}

// PersistenceEnabled reports whether a database is configured.
func (c *Config) PersistenceEnabled() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

// ReportsEnabled reports whether scheduled coverage reports are posted.
func (c *Config) ReportsEnabled() bool {
	return c.ReportChannelID != ""
}

// digitsOnly is true for "" as well: the IDs are optional.
func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
