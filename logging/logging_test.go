// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestDecorator_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewDecorator(slog.NewJSONHandler(&buf, nil), RequestIDExtractor, nil))

	ctx := WithRequestID(context.Background(), "req-123")
	logger.InfoContext(ctx, "hello", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "req-123", rec["request_id"])
	assert.Equal(t, "v", rec["k"])
}

func TestDecorator_NoRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewDecorator(slog.NewJSONHandler(&buf, nil), RequestIDExtractor))

	logger.Info("hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.NotContains(t, rec, "request_id")
}

func TestDecorator_WithAttrsKeepsExtractors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewDecorator(slog.NewJSONHandler(&buf, nil), RequestIDExtractor)).
		With("component", "test")

	logger.InfoContext(WithRequestID(context.Background(), "abc"), "hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "abc", rec["request_id"])
	assert.Equal(t, "test", rec["component"])
}

func TestMultiHandler_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := newMultiHandler(
		slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(h)

	logger.Info("info only")
	assert.NotEmpty(t, a.String())
	assert.Empty(t, b.String())

	logger.Error("both")
	assert.Contains(t, b.String(), "both")
}

func TestBuild_WithoutDSN(t *testing.T) {
	var buf bytes.Buffer
	logger, flush := build(Config{}, slog.NewJSONHandler(&buf, nil))
	require.NotNil(t, logger)
	flush()

	logger.Info("ready")
	assert.Contains(t, buf.String(), "ready")
}
