// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

ContactRequest is the body of both POST /api/users and POST /api/send-email.
JSON keys match the contact form inputs:

	{"nome": "...", "email": "...", "telefone": "...", "assunto": "...", "mensagem": "..."}

nome, email and mensagem are required. MissingFields reports which of them
are empty (whitespace-only counts as empty).

# Response Types

  - ContactResponse: success, message, id (id only after a direct save)
  - ListSubmissionsResponse: success, users
  - ErrorResponse: error, message (used for non-contact errors such as 404s)

# Domain Types

Submission is a stored contact entry:

	type Submission struct {
	    ID        int64     // assigned by the store
	    Name      string
	    Email     string
	    Phone     string    // optional
	    Subject   string    // optional
	    Message   string
	    CreatedAt time.Time // assigned by the store
	}

Submissions are append-only. Nothing in the service updates or deletes them.
*/
package models
