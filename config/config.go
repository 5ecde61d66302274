package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SeedIfEmpty = "if-empty"
	SeedReset   = "reset"

	ScopeAll   = "all"
	ScopeToday = "today"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	Stats     StatsConfig
	Reporting ReportingConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port           string
	GinMode        string
	CORSOrigin     string
	RateLimitRPS   float64
	RateLimitBurst int
	FrontendDir    string
}

// DatabaseConfig selects the store. A non-empty URL points at MySQL or
// PostgreSQL, otherwise the embedded SQLite file is used.
type DatabaseConfig struct {
	URL          string
	SQLitePath   string
	SeedMode     string
	MaxOpenConns int
	MaxIdleConns int
}

type LogConfig struct {
	Level  string
	Format string
}

// StatsConfig controls the default scope of the dashboard counters.
type StatsConfig struct {
	Scope    string
	Timezone string
}

// ReportingConfig holds the compliance reporter schedule. An empty
// CronSchedule disables the reporter; REPORT_CRON=off produces one.
type ReportingConfig struct {
	CronSchedule string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	var err error
	if envFile != "" {
		err = godotenv.Load(envFile)
	} else {
		envFile = ".env"
		err = godotenv.Load()
	}
	// a missing file is fine, the environment may already be populated
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
	}

	env := &envReader{}
	cfg := &Config{
		Server: ServerConfig{
			Port:           getenvWithDefault("PORT", "5001"),
			GinMode:        getenvWithDefault("GIN_MODE", "debug"),
			CORSOrigin:     getenvWithDefault("CORS_ORIGIN", "*"),
			RateLimitRPS:   env.getFloat("RATE_LIMIT_RPS", 20),
			RateLimitBurst: env.getInt("RATE_LIMIT_BURST", 40),
			FrontendDir:    os.Getenv("FRONTEND_DIR"),
		},
		Database: DatabaseConfig{
			URL:          os.Getenv("DATABASE_URL"),
			SQLitePath:   getenvWithDefault("SQLITE_PATH", "haccp.db"),
			SeedMode:     strings.ToLower(getenvWithDefault("SEED_MODE", SeedIfEmpty)),
			MaxOpenConns: env.getInt("DB_MAX_OPEN_CONNS", 5),
			MaxIdleConns: env.getInt("DB_MAX_IDLE_CONNS", 2),
		},
		Log: LogConfig{
			Level:  getenvWithDefault("LOG_LEVEL", "info"),
			Format: getenvWithDefault("LOG_FORMAT", "text"),
		},
		Stats: StatsConfig{
			Scope:    strings.ToLower(getenvWithDefault("STATS_SCOPE", ScopeAll)),
			Timezone: getenvWithDefault("TIMEZONE", "Europe/Stockholm"),
		},
		Reporting: ReportingConfig{
			CronSchedule: reportSchedule(),
		},
	}
	if err := errors.Join(env.errs...); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("PORT must be provided")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Server.Port)
	}

	if c.Database.URL == "" && c.Database.SQLitePath == "" {
		return errors.New("either DATABASE_URL or SQLITE_PATH must be provided")
	}

	switch c.Database.SeedMode {
	case SeedIfEmpty, SeedReset:
	default:
		return fmt.Errorf("SEED_MODE must be %q or %q, got %q", SeedIfEmpty, SeedReset, c.Database.SeedMode)
	}

	switch c.Stats.Scope {
	case ScopeAll, ScopeToday:
	default:
		return fmt.Errorf("STATS_SCOPE must be %q or %q, got %q", ScopeAll, ScopeToday, c.Stats.Scope)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("TIMEZONE is invalid: %w", err)
	}

	if !(c.Server.RateLimitRPS > 0) || c.Server.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	return nil
}

// Location resolves the configured timezone used for calendar-day scoping.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Stats.Timezone)
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// envReader parses numeric variables and collects every malformed one.
type envReader struct {
	errs []error
}

func (r *envReader) getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s must be an integer, got %q", key, value))
		return fallback
	}
	return n
}

func (r *envReader) getFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s must be a number, got %q", key, value))
		return fallback
	}
	return f
}

func reportSchedule() string {
	value := getenvWithDefault("REPORT_CRON", "0 22 * * *")
	if strings.EqualFold(value, "off") {
		return ""
	}
	return value
}
