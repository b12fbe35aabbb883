package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiterPerClient(t *testing.T) {
	limiter := perMinute(2, "2 per minute")
	handler := limiter.middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) int {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w.Result().StatusCode
	}

	if got := do("10.0.0.1:1234"); got != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", got)
	}
	if got := do("10.0.0.1:1234"); got != http.StatusOK {
		t.Fatalf("second request: expected 200, got %d", got)
	}
	if got := do("10.0.0.1:1234"); got != http.StatusTooManyRequests {
		t.Fatalf("third request: expected 429, got %d", got)
	}

	// A different client gets its own bucket.
	if got := do("10.0.0.2:1234"); got != http.StatusOK {
		t.Fatalf("other client: expected 200, got %d", got)
	}
}

func TestRateLimiterHonorsForwardedFor(t *testing.T) {
	limiter := perMinute(1, "1 per minute")
	handler := limiter.middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(forwarded string) int {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "127.0.0.1:9999"
		r.Header.Set("X-Forwarded-For", forwarded)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w.Result().StatusCode
	}

	if got := do("203.0.113.5"); got != http.StatusOK {
		t.Fatalf("expected 200, got %d", got)
	}
	if got := do("203.0.113.5"); got != http.StatusTooManyRequests {
		t.Fatalf("expected 429 for the same forwarded client, got %d", got)
	}
	if got := do("203.0.113.6"); got != http.StatusOK {
		t.Fatalf("expected 200 for a different forwarded client, got %d", got)
	}
}
