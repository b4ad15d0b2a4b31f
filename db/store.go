// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/portfolio-contact/models"
)

// Store is the append-only submission table behind a single long-lived
// connection handle.
type Store struct {
	conn    *sql.DB
	dialect dialect
	closed  atomic.Bool
	now     func() time.Time
}

// Open connects to the database and verifies the connection.
// dbType is "sqlite" or "postgres"; url is a file path or a postgres URL.
func Open(ctx context.Context, dbType, url string) (*Store, error) {
	var (
		d   dialect
		dsn string
	)

	switch dbType {
	case "", "sqlite":
		d = sqliteDialect
		if err := ensureParentDir(url); err != nil {
			return nil, &StoreError{Op: "open", Err: err}
		}
		dsn = sqliteDSN(url)
	case "postgres":
		d = postgresDialect
		dsn = url
	default:
		return nil, &StoreError{Op: "open", Err: fmt.Errorf("unsupported database type %q", dbType)}
	}

	conn, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, &StoreError{Op: "open", Err: err}
	}

	// SQLite allows one writer at a time; a single pooled connection
	// serializes appends inside the store.
	if d.driver == "sqlite" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, &StoreError{Op: "ping", Err: err}
	}

	return &Store{conn: conn, dialect: d, now: time.Now}, nil
}

// Insert appends a submission and returns its new id. ID and CreatedAt are
// written back into sub.
func (s *Store) Insert(ctx context.Context, sub *models.Submission) (int64, error) {
	if s.closed.Load() {
		return 0, &StoreError{Op: "insert", Err: ErrClosed}
	}

	createdAt := s.now().UTC()

	var id int64
	err := s.conn.QueryRowContext(ctx, s.dialect.insert,
		sub.Name, sub.Email, sub.Phone, sub.Subject, sub.Message, createdAt,
	).Scan(&id)
	if err != nil {
		return 0, &StoreError{Op: "insert", Err: err}
	}

	sub.ID = id
	sub.CreatedAt = createdAt
	return id, nil
}

// ListAll returns every submission, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.Submission, error) {
	if s.closed.Load() {
		return nil, &StoreError{Op: "list", Err: ErrClosed}
	}

	rows, err := s.conn.QueryContext(ctx, s.dialect.list)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	defer rows.Close()

	subs := []models.Submission{}
	for rows.Next() {
		var (
			sub       models.Submission
			phone     sql.NullString
			subject   sql.NullString
			createdAt timestamp
		)

		if err := rows.Scan(
			&sub.ID,
			&sub.Name,
			&sub.Email,
			&phone,
			&subject,
			&sub.Message,
			&createdAt,
		); err != nil {
			return nil, &StoreError{Op: "list", Err: err}
		}

		sub.Phone = phone.String
		sub.Subject = subject.String
		sub.CreatedAt = createdAt.Time
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}

	return subs, nil
}

// Ping checks that the connection is still usable.
func (s *Store) Ping(ctx context.Context) error {
	if s.closed.Load() {
		return &StoreError{Op: "ping", Err: ErrClosed}
	}
	if err := s.conn.PingContext(ctx); err != nil {
		return &StoreError{Op: "ping", Err: err}
	}
	return nil
}

// Close releases the connection. Calling it more than once is a no-op.
func (s *Store) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	return s.conn.Close()
}

func ensureParentDir(path string) error {
	if path == "" || path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}

// sqliteDSN adds a busy timeout unless the caller already set pragmas.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_pragma=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)"
}

// timestamp scans created_at from either driver: postgres yields
// time.Time, sqlite may yield time.Time or text depending on the column.
type timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (t *timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}
