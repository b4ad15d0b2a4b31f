// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the portfolio contact server.

The server backs the contact form of a static portfolio site. Submissions
are stored in a database and, when email is configured, relayed to the
site owner through Resend.

# Starting the Server

Everything has a default, so the server starts with no configuration:

	go run .

A .env file in the working directory is loaded first. Flags override
environment variables:

	go run . -p 8080 -d data/app.db -static ./public

# Configuration

  - PORT (-p): Server port (default: 5000)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: data/app.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - STATIC_DIR (-static): Site directory (default: embedded site)
  - RESEND_API_KEY, RESEND_DOMAIN, CONTACT_EMAIL_TO: Email relay; all three
    are required, otherwise submissions are only stored
  - RESEND_FROM_NAME: Sender display name (default: Portfólio)
  - LOG_LEVEL: debug, info, warn or error (default: info)
  - SENTRY_DSN, SENTRY_ENVIRONMENT: Optional error reporting

# Architecture

  - handlers: Contact form endpoints (save, list, send-email)
  - router: Route table, middleware chain, static site
  - middleware: Request IDs, CORS, logging, JSON helpers
  - relay: Resend client and email rendering
  - db: Submission store for SQLite and PostgreSQL
  - logging: slog setup with request ids and Sentry
  - metrics: Prometheus counters
  - models: Request/response types
  - cliparse: Configuration parsing
  - web: Embedded default site

SIGINT and SIGTERM trigger a graceful shutdown.
*/
package main
