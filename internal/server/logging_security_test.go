package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/osse101/LoveSim_Go/internal/handler"
)

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug, // Must be Debug to log headers
	}
	orig := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, opts)))
	t.Cleanup(func() { slog.SetDefault(orig) })

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	h := loggingMiddleware(next)

	req := httptest.NewRequest(http.MethodPost, "/api/rankings", nil)
	req.Header.Set("Authorization", "Bearer mytoken")
	req.Header.Set("Cookie", "session=abc123")
	req.Header.Set("User-Agent", "TestAgent")
	req = req.WithContext(handler.WithClientIP(req.Context(), "203.0.113.99"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	logOutput := buf.String()

	if !strings.Contains(logOutput, LogMsgRequestHeaders) {
		t.Fatalf("Log output missing headers log: %s", logOutput)
	}
	if strings.Contains(logOutput, "Bearer mytoken") {
		t.Errorf("SECURITY FAIL: Log output contains Authorization value: %s", logOutput)
	}
	if strings.Contains(logOutput, "abc123") {
		t.Errorf("SECURITY FAIL: Log output contains Cookie value: %s", logOutput)
	}
	if !strings.Contains(logOutput, "TestAgent") {
		t.Errorf("Log output missing non-sensitive header: %s", logOutput)
	}
	if !strings.Contains(logOutput, "status=201") {
		t.Errorf("Log output missing completion status: %s", logOutput)
	}

	// The client address only appears on the debug line
	for _, line := range strings.Split(logOutput, "\n") {
		if strings.Contains(line, "level=INFO") && strings.Contains(line, "203.0.113.99") {
			t.Errorf("client address logged at info level: %s", line)
		}
	}
}

func TestLoggingMiddleware_SkipsOpsPaths(t *testing.T) {
	var buf bytes.Buffer
	orig := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(orig) })

	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if buf.Len() != 0 {
		t.Errorf("expected no log output for /healthz, got: %s", buf.String())
	}
	if rec.Header().Get(HeaderRequestID) != "" {
		t.Errorf("expected no request id header for /healthz")
	}
}
