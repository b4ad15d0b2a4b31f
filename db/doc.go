// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores contact form submissions.

# Opening a Store

Open connects to SQLite (modernc.org/sqlite, no cgo) or PostgreSQL
(lib/pq) and verifies the connection:

	store, err := db.Open(ctx, "sqlite", "data/app.db")
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

For SQLite the parent directory of the file is created if needed and the
pool is limited to one connection, so concurrent inserts are serialized.

# Schema Creation

EnsureSchema creates the submissions table and its created_at index.
Safe to call multiple times - uses IF NOT EXISTS.

# Table

	submissions
	  id          auto-increment primary key
	  name        text, required
	  email       text, required
	  phone       text, nullable
	  subject     text, nullable
	  message     text, required
	  created_at  timestamp, set at insert

# Errors

Failures are wrapped in *StoreError naming the operation. Operations on a
closed store return ErrClosed.
*/
package db
