package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/spf13/viper"

	"github.com/guttosm/nbpstat/internal/dates"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example ENV equivalent:
//
//	NBP_BASE_URL=http://api.nbp.pl/api/
//	NBP_RANGE_LIMIT=367
//	NBP_TABLE_RANGE_LIMIT=93
//	SERVER_PORT=8080
//	JOURNAL_ENABLED=true
//	POSTGRES_HOST=localhost
//	POSTGRES_DB=nbpstat
type Config struct {
	NBP      NBPConfig      // NBP web API client settings
	Server   ServerConfig   // HTTP server configuration
	Journal  JournalConfig  // order-run journal switch
	Postgres PostgresConfig // PostgreSQL connection settings
}

// NBPConfig configures the API client and the paging limits of the orders.
type NBPConfig struct {
	BaseURL      string
	URLSuffix    string
	RangeLimit   int           // max days per gold / single-currency request
	TableLimit   int           // max days per full-table request
	HistoryStart civil.Date    // first day searched by lowest-highest
	Timeout      time.Duration // per-request HTTP timeout
	RateLimit    float64       // requests per second, 0 disables throttling
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// JournalConfig turns persistence of executed orders on or off.
type JournalConfig struct {
	Enabled bool
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// LoadConfig reads the configuration into a fresh viper instance.
func LoadConfig() (Config, error) {
	return Load(viper.New())
}

// Load builds a Config from v.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//  4. Anything already bound on v, e.g. command line flags.
func Load(v *viper.Viper) (Config, error) {
	setDefaults(v)

	// Optionally read from .env if present (common in local dev)
	v.SetConfigFile(".env")
	_ = v.ReadInConfig() // ignore error if no .env

	v.AutomaticEnv()

	cfg := Config{
		NBP: NBPConfig{
			BaseURL:    v.GetString("NBP_BASE_URL"),
			URLSuffix:  v.GetString("NBP_URL_SUFFIX"),
			RangeLimit: v.GetInt("NBP_RANGE_LIMIT"),
			TableLimit: v.GetInt("NBP_TABLE_RANGE_LIMIT"),
			Timeout:    v.GetDuration("NBP_TIMEOUT"),
			RateLimit:  v.GetFloat64("NBP_RATE_LIMIT"),
		},
		Server: ServerConfig{
			Port: v.GetString("SERVER_PORT"),
		},
		Journal: JournalConfig{
			Enabled: v.GetBool("JOURNAL_ENABLED"),
		},
		Postgres: PostgresConfig{
			Host:     v.GetString("POSTGRES_HOST"),
			Port:     v.GetInt("POSTGRES_PORT"),
			User:     v.GetString("POSTGRES_USER"),
			Password: v.GetString("POSTGRES_PASSWORD"),
			DBName:   v.GetString("POSTGRES_DB"),
			SSLMode:  v.GetString("POSTGRES_SSLMODE"),
		},
	}

	var problems []string
	if start, err := dates.Parse(v.GetString("NBP_HISTORY_START")); err != nil {
		problems = append(problems, "NBP_HISTORY_START: "+err.Error())
	} else {
		cfg.NBP.HistoryStart = start
	}

	cfg.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.DBName,
		cfg.Postgres.SSLMode,
	)

	problems = append(problems, validateConfig(cfg)...)
	if len(problems) > 0 {
		return cfg, errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("NBP_BASE_URL", "http://api.nbp.pl/api/")
	v.SetDefault("NBP_URL_SUFFIX", "/?format=json")
	v.SetDefault("NBP_RANGE_LIMIT", 367)
	v.SetDefault("NBP_TABLE_RANGE_LIMIT", 93)
	v.SetDefault("NBP_HISTORY_START", "2002-01-02")
	v.SetDefault("NBP_TIMEOUT", "15s")
	v.SetDefault("NBP_RATE_LIMIT", 5)

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("JOURNAL_ENABLED", false)

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", 5432)
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "postgres")
	v.SetDefault("POSTGRES_DB", "nbpstat")
	v.SetDefault("POSTGRES_SSLMODE", "disable")
}

// validateConfig lists every missing or out-of-range setting. Postgres
// settings are only required when the journal is enabled.
func validateConfig(cfg Config) []string {
	var problems []string

	if cfg.NBP.BaseURL == "" {
		problems = append(problems, "NBP_BASE_URL is required")
	}
	if cfg.NBP.RangeLimit < 1 {
		problems = append(problems, "NBP_RANGE_LIMIT must be >= 1")
	}
	if cfg.NBP.TableLimit < 1 {
		problems = append(problems, "NBP_TABLE_RANGE_LIMIT must be >= 1")
	}
	if cfg.NBP.Timeout <= 0 {
		problems = append(problems, "NBP_TIMEOUT must be positive")
	}
	if cfg.NBP.RateLimit < 0 {
		problems = append(problems, "NBP_RATE_LIMIT must not be negative")
	}
	if cfg.Server.Port == "" {
		problems = append(problems, "SERVER_PORT is required")
	}

	if !cfg.Journal.Enabled {
		return problems
	}
	var missing []string
	if cfg.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if cfg.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if cfg.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if cfg.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if cfg.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if len(missing) > 0 {
		problems = append(problems, fmt.Sprintf("missing required environment variables: %v", missing))
	}
	return problems
}
