package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nhl-scoreboard/internal/metrics"
)

func TestLoggingMiddlewarePropagatesRequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	handler := LoggingMiddleware(nil, metrics.NewRecorder(), next)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen != "abc-123" {
		t.Fatalf("expected request ID propagated, got %q", seen)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected request ID echoed, got %q", got)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status preserved, got %d", rec.Code)
	}
}

func TestLoggingMiddlewareReplacesInvalidRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := LoggingMiddleware(nil, nil, next)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces!")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	got := rec.Header().Get("X-Request-ID")
	if got == "" || got == "bad id with spaces!" {
		t.Fatalf("expected a generated request ID, got %q", got)
	}
}

func TestSanitizeRequestID(t *testing.T) {
	if got := sanitizeRequestID("valid_id-42"); got != "valid_id-42" {
		t.Fatalf("expected valid ID kept, got %q", got)
	}
	if got := sanitizeRequestID(""); got == "" {
		t.Fatalf("expected generated ID for empty input")
	}
}

func TestNormalizePath(t *testing.T) {
	if got := normalizePath("/api/schedule?refresh=1"); got != "/api/schedule" {
		t.Fatalf("expected query stripped, got %q", got)
	}
	if got := normalizePath(""); got != "" {
		t.Fatalf("expected empty path unchanged, got %q", got)
	}
}
