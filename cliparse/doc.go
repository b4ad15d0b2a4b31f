// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p       Server port
	-d       Database URL
	-t       Database type (sqlite or postgres)
	-static  Static site directory

# Environment Variables

Flags fall back to environment variables, then to defaults:

	PORT           → -p (5000)
	DATABASE_URL   → -d (data/app.db)
	DATABASE_TYPE  → -t (sqlite)
	STATIC_DIR     → -static (embedded site)

Email relay and logging settings are read from the environment only:

	RESEND_API_KEY, RESEND_DOMAIN, CONTACT_EMAIL_TO
	RESEND_FROM_NAME (Portfólio)
	LOG_LEVEL, SENTRY_DSN, SENTRY_ENVIRONMENT

# Validation

ParseFlags returns an error for an invalid port or an unknown database
type. Missing relay settings are not an error; MissingRelaySettings lists
them so the caller can warn that email is disabled.
*/
package cliparse
