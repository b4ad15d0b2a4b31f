// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

const flushTimeout = 2 * time.Second

// Config controls log level and optional Sentry reporting.
type Config struct {
	Level             string
	SentryDSN         string
	SentryEnvironment string
}

// Setup builds the process logger, installs it as the slog default and
// returns a flush function to call before exit.
// Without a DSN only stdout logging is enabled.
func Setup(cfg Config) (*slog.Logger, func()) {
	stdout := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	})

	logger, flush := build(cfg, stdout)
	slog.SetDefault(logger)
	return logger, flush
}

func build(cfg Config, stdout slog.Handler) (*slog.Logger, func()) {
	noop := func() {}

	if cfg.SentryDSN == "" {
		return slog.New(NewDecorator(stdout, RequestIDExtractor)), noop
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdout).Error("failed to initialize Sentry", "error", err)
		return slog.New(NewDecorator(stdout, RequestIDExtractor)), noop
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	combined := newMultiHandler(stdout, sentryHandler)
	flush := func() {
		sentry.Flush(flushTimeout)
	}
	return slog.New(NewDecorator(combined, RequestIDExtractor)), flush
}

// ParseLevel maps DEBUG, INFO, WARN and ERROR to slog levels. Anything
// else is INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
