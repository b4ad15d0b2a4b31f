// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the contact form service.

# Route Table

Routes use Go 1.22+ pattern syntax:

	GET  /health          → "OK", or 503 when the store is down
	POST /api/users       → ContactHandler.Save
	GET  /api/users       → ContactHandler.List
	POST /api/send-email  → ContactHandler.SendEmail
	GET  /metrics         → Prometheus exposition
	GET  /                → static site

# Middleware

Every request passes through, outermost first:

  - RequestID: assigns or propagates X-Request-ID
  - Recover: turns panics into 500 responses
  - CORS: allows any origin and answers preflight requests

API routes are additionally wrapped in WithLogging.

# Static Site

SiteFS picks the directory served at the root. With STATIC_DIR unset the
embedded site from package web is served.

	mux := router.NewRouter(store, relayClient, router.SiteFS(cfg.StaticDir))
*/
package router
