package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"

	defaultPort        = 5000
	defaultDatabaseURL = "data/app.db"
	defaultSenderName  = "Portfólio"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	StaticDir    string

	// Relay settings. Any of them may be empty; the relay is then inactive.
	ResendAPIKey string
	ResendDomain string
	ContactTo    string
	SenderName   string

	LogLevel          string
	SentryDSN         string
	SentryEnvironment string
}

// RelayConfigured reports whether every relay setting is present.
func (c Config) RelayConfigured() bool {
	return c.ResendAPIKey != "" && c.ResendDomain != "" && c.ContactTo != ""
}

// MissingRelaySettings lists the env names of unset relay settings.
func (c Config) MissingRelaySettings() []string {
	var missing []string
	if c.ResendAPIKey == "" {
		missing = append(missing, "RESEND_API_KEY")
	}
	if c.ResendDomain == "" {
		missing = append(missing, "RESEND_DOMAIN")
	}
	if c.ContactTo == "" {
		missing = append(missing, "CONTACT_EMAIL_TO")
	}
	return missing
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("portfolio-contact", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite path or postgres URL)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.StaticDir, "static", "", "Directory with the static site (default: embedded site)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil || port <= 0 {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultDatabaseURL
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unknown database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.StaticDir == "" {
		cfg.StaticDir = os.Getenv("STATIC_DIR")
	}

	// Relay settings are optional: missing values disable email relay
	cfg.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.ResendDomain = os.Getenv("RESEND_DOMAIN")
	cfg.ContactTo = os.Getenv("CONTACT_EMAIL_TO")
	cfg.SenderName = os.Getenv("RESEND_FROM_NAME")
	if cfg.SenderName == "" {
		cfg.SenderName = defaultSenderName
	}

	cfg.LogLevel = os.Getenv("LOG_LEVEL")
	cfg.SentryDSN = os.Getenv("SENTRY_DSN")
	cfg.SentryEnvironment = os.Getenv("SENTRY_ENVIRONMENT")
	if cfg.SentryEnvironment == "" {
		cfg.SentryEnvironment = "production"
	}

	return cfg, nil
}
