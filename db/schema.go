// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
)

// EnsureSchema creates the submissions table if it does not exist.
// Safe to call multiple times - uses IF NOT EXISTS.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.conn.ExecContext(ctx, s.dialect.schema)
	if err != nil {
		return &StoreError{Op: "ensure schema", Err: fmt.Errorf("failed to create schema: %w", err)}
	}

	return nil
}

// dialect holds the statements that differ between drivers.
type dialect struct {
	driver string
	schema string
	insert string
	list   string
}

var sqliteDialect = dialect{
	driver: "sqlite",
	schema: `
-- Contact form submissions
CREATE TABLE IF NOT EXISTS submissions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT,
    subject TEXT,
    message TEXT NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at);
`,
	insert: `
		INSERT INTO submissions (name, email, phone, subject, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`,
	list: `
		SELECT id, name, email, phone, subject, message, created_at
		FROM submissions
		ORDER BY created_at DESC, id DESC
	`,
}

var postgresDialect = dialect{
	driver: "postgres",
	schema: `
-- Contact form submissions
CREATE TABLE IF NOT EXISTS submissions (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT,
    subject TEXT,
    message TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at);
`,
	insert: `
		INSERT INTO submissions (name, email, phone, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
	list: `
		SELECT id, name, email, phone, subject, message, created_at
		FROM submissions
		ORDER BY created_at DESC, id DESC
	`,
}
