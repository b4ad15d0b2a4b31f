// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /api/send-email", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Records carry the request_id set by RequestID.

# Request IDs and Recovery

The router wraps the whole mux:

	handler := middleware.RequestID(middleware.Recover(middleware.CORS(mux)))

RequestID reuses an upstream X-Request-ID or generates a UUID. Recover
turns panics into 500 responses.

# CORS Middleware

The site may be served from another origin (for example a static host),
so all origins are allowed for GET, POST and OPTIONS. Preflight requests
are answered with 204 and never reach the mux.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "message")

Parse JSON request bodies (capped at MaxBodyBytes):

	var req models.ContactRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		...
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
