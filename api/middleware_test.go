package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVisitorLogMiddlewareRecordsRequests(t *testing.T) {
	db := newTestDatabase(t)
	handler := VisitorLogMiddleware(db.VisitorLogRepo())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest("GET", "/blog", nil)
	r.RemoteAddr = "198.51.100.7:4242"
	r.Header.Set("User-Agent", "test-agent")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	logs, err := db.VisitorLogRepo().FindRecent(10)
	if err != nil {
		t.Fatalf("list visitor logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected one visitor log, got %d", len(logs))
	}
	entry := logs[0]
	if entry.IP != "198.51.100.7" || entry.Path != "/blog" || entry.UserAgent != "test-agent" {
		t.Fatalf("unexpected log entry: %+v", entry)
	}
}

func TestVisitorLogMiddlewareSkipsHealthAndStatic(t *testing.T) {
	db := newTestDatabase(t)
	handler := VisitorLogMiddleware(db.VisitorLogRepo())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/healthz", "/static/resume.pdf"} {
		r := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
	}

	logs, err := db.VisitorLogRepo().FindRecent(10)
	if err != nil {
		t.Fatalf("list visitor logs: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("expected no logs for exempt paths, got %d", len(logs))
	}
}

func TestLogInternalServerErrorsRecoversPanic(t *testing.T) {
	handler := LogInternalServerErrors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	r := httptest.NewRequest("GET", "/panic", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Result().StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", w.Result().StatusCode)
	}
}
