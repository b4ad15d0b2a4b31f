// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the contact form.

# Handler

ContactHandler depends on a SubmissionStore and a Relay:

	contactHandler := handlers.NewContactHandler(store, relayClient)

# Endpoints

	POST /api/users       → Save (store only, returns id)
	GET  /api/users       → List (newest first)
	POST /api/send-email  → SendEmail (store, then relay)

# Validation

nome, email and mensagem are required; whitespace-only values count as
missing. Email format is not checked. Invalid requests get 400 and touch
neither the store nor the relay.

# Send Email Outcomes

The store step on send-email never fails the request. The response
depends on the relay:

	relay not configured      → 200, success
	delivery id returned      → 200, success
	provider returned an error → 200, success (message saved)
	no delivery id            → 500
	transport or other error  → 500

# Response Format

	{"success": true, "message": "..."}
	{"success": true, "message": "...", "id": 7}
	{"success": true, "users": [...]}
*/
package handlers
