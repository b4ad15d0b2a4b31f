// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/danielhkuo/portfolio-contact/handlers"
	"github.com/danielhkuo/portfolio-contact/metrics"
	"github.com/danielhkuo/portfolio-contact/middleware"
	"github.com/danielhkuo/portfolio-contact/web"
)

// pinger is implemented by stores that can report connectivity.
type pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter builds the full handler chain: request ids, panic recovery and
// CORS around the route table.
func NewRouter(store handlers.SubmissionStore, relay handlers.Relay, site fs.FS) http.Handler {
	mux := http.NewServeMux()

	contactHandler := handlers.NewContactHandler(store, relay)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if p, ok := store.(pinger); ok {
			if err := p.Ping(r.Context()); err != nil {
				slog.ErrorContext(r.Context(), "health check failed", "error", err)
				middleware.ErrorResponse(w, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Contact form API
	mux.HandleFunc("POST /api/users", middleware.WithLogging(contactHandler.Save))
	mux.HandleFunc("GET /api/users", middleware.WithLogging(contactHandler.List))
	mux.HandleFunc("POST /api/send-email", middleware.WithLogging(contactHandler.SendEmail))

	mux.Handle("GET /metrics", metrics.Handler())

	// Static site
	mux.Handle("GET /", http.FileServerFS(site))

	return middleware.RequestID(middleware.Recover(middleware.CORS(mux)))
}

// SiteFS returns the directory to serve at the root: dir when set,
// otherwise the embedded default site.
func SiteFS(dir string) fs.FS {
	if dir == "" {
		return web.FS()
	}
	return os.DirFS(dir)
}
