// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/danielhkuo/portfolio-contact/cliparse"
	"github.com/danielhkuo/portfolio-contact/db"
	"github.com/danielhkuo/portfolio-contact/models"
	"github.com/danielhkuo/portfolio-contact/relay"
)

// SetupTestStore opens a fresh SQLite store in a temp directory with the
// schema in place. It is closed when the test ends.
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	store, err := db.Open(context.Background(), cliparse.DatabaseSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return store
}

// ValidContact returns a request with every required field set
func ValidContact() models.ContactRequest {
	return models.ContactRequest{
		Name:    "Ana",
		Email:   "ana@x.com",
		Phone:   "",
		Subject: "Oi",
		Message: "Olá",
	}
}

// CountSubmissions returns the number of stored submissions
func CountSubmissions(t *testing.T, store *db.Store) int {
	t.Helper()

	subs, err := store.ListAll(context.Background())
	if err != nil {
		t.Fatalf("Failed to list submissions: %v", err)
	}
	return len(subs)
}

// FakeRelay records Send calls and answers with a fixed id or error.
type FakeRelay struct {
	Enabled    bool
	DeliveryID string
	Err        error

	mu    sync.Mutex
	calls []relay.Message
}

func (f *FakeRelay) Configured() bool {
	return f.Enabled
}

func (f *FakeRelay) Send(_ context.Context, msg relay.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, msg)
	if f.Err != nil {
		return "", f.Err
	}
	return f.DeliveryID, nil
}

// Calls returns the messages passed to Send so far.
func (f *FakeRelay) Calls() []relay.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]relay.Message(nil), f.calls...)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
