package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/portfolio-contact/cliparse"
	"github.com/danielhkuo/portfolio-contact/db"
	"github.com/danielhkuo/portfolio-contact/logging"
	"github.com/danielhkuo/portfolio-contact/relay"
	"github.com/danielhkuo/portfolio-contact/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	_, flush := logging.Setup(logging.Config{
		Level:             cfg.LogLevel,
		SentryDSN:         cfg.SentryDSN,
		SentryEnvironment: cfg.SentryEnvironment,
	})

	if err := run(cfg); err != nil {
		slog.Error("server stopped with error", "error", err)
		flush()
		os.Exit(1)
	}
	flush()
}

func run(cfg cliparse.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the store and make sure the table exists
	store, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	relayClient := relay.New(relay.Config{
		APIKey:     cfg.ResendAPIKey,
		Domain:     cfg.ResendDomain,
		To:         cfg.ContactTo,
		SenderName: cfg.SenderName,
	})
	if relayClient.Configured() {
		slog.Info("email relay enabled", "from", relayClient.From(), "to", cfg.ContactTo)
	} else {
		for _, name := range cfg.MissingRelaySettings() {
			slog.Warn("email relay setting missing", "env", name)
		}
		slog.Warn("email relay disabled, submissions are only stored")
	}

	server := newServer(cfg.Port, router.NewRouter(store, relayClient, router.SiteFS(cfg.StaticDir)))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	slog.Info("Server closed", "error", err)
	return err
}

// newServer sets no write timeout: a slow relay call delays its own
// response and must not cut it off.
func newServer(port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
