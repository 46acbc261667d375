// Package testutil provides shared helpers for docshift tests.
package testutil

import (
	"log/slog"
	"strings"
	"testing"
)

// NewTestLogger returns a debug-level logger that routes records through
// t.Log, so they only surface on failure or under -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	// t.Log adds its own newline; keep the handler's out of the output.
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
