package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vncsmyrnk/scorecard/internal/core/domain"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Port        int
	DatabaseURL string
	Storage     string
	Migrate     bool

	JWTSecret      string
	AllowedOrigins []string
	CookieDomain   string
	CookieSecure   bool

	AdminName     string
	AdminEmail    string
	AdminPassword string

	NonNumeric domain.NonNumericPolicy

	LogFormat string
	LogLevel  string
}

// Load parses command line flags. Any flag left unset falls back to its
// environment variable, then to a default.
func Load(args []string) (Config, error) {
	var cfg Config
	var nonNumeric, origins string

	fs := flag.NewFlagSet("scorecard", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", 0, "HTTP port")
	fs.StringVar(&cfg.DatabaseURL, "db", "", "Postgres connection URL")
	fs.StringVar(&cfg.Storage, "storage", "", "Storage backend (postgres or memory)")
	fs.BoolVar(&cfg.Migrate, "migrate", envBool("MIGRATE", false), "Apply migrations on start")
	fs.StringVar(&origins, "origins", os.Getenv("ALLOWED_ORIGINS"), "Comma separated CORS origins")
	fs.StringVar(&nonNumeric, "non-numeric", os.Getenv("RESULTS_NON_NUMERIC"), "Stored non-numeric answers: zero or skip")
	fs.StringVar(&cfg.LogFormat, "log-format", envOr("LOG_FORMAT", "json"), "Log format (json or text)")
	fs.StringVar(&cfg.LogLevel, "log-level", envOr("LOG_LEVEL", "info"), "Log level")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080
		}
	}

	if cfg.Storage == "" {
		cfg.Storage = envOr("STORAGE", StoragePostgres)
	}
	switch cfg.Storage {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = DatabaseURL()
		}
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -db, DATABASE_URL or POSTGRES_* env)")
		}
	case StorageMemory:
	default:
		return Config{}, fmt.Errorf("unknown storage %q", cfg.Storage)
	}

	policy, ok := domain.ParseNonNumericPolicy(strings.ToLower(strings.TrimSpace(nonNumeric)))
	if !ok {
		return Config{}, fmt.Errorf("invalid RESULTS_NON_NUMERIC %q (use zero or skip)", nonNumeric)
	}
	cfg.NonNumeric = policy

	cfg.AllowedOrigins = splitList(origins)
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.CookieDomain = os.Getenv("COOKIE_DOMAIN")
	cfg.CookieSecure = envBool("COOKIE_SECURE", false)
	cfg.AdminName = os.Getenv("ADMIN_NAME")
	cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")

	return cfg, nil
}

// DatabaseURL reads DATABASE_URL, or assembles one from the POSTGRES_*
// variables when it is unset.
func DatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		host,
		envOr("POSTGRES_PORT", "5432"),
		os.Getenv("POSTGRES_DB"),
	)
}

func envOr(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func splitList(raw string) []string {
	var out []string
	for _, value := range strings.Split(raw, ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}
