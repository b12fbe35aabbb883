package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/vishaldeshmukh2k6/portfolio-backend/config"
	"github.com/vishaldeshmukh2k6/portfolio-backend/services"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	settings := config.Settings{
		Port:              "0",
		SecretKey:         "test-secret",
		AdminUser:         "admin",
		AdminPasswordHash: string(hash),
		GitHubUsername:    "octo",
		ResumePath:        "static/resume.pdf",
		AcceptedOrigins:   []string{"*"},
	}

	db := newTestDatabase(t)
	stats := services.NewStatsService("octo", db.GitHubStatsRepo())
	return newRouter(settings, db, &recordingMailer{}, stats)
}

func TestRouterServesHealth(t *testing.T) {
	router := newTestRouter(t)

	r := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /healthz, got %d", w.Result().StatusCode)
	}
}

func TestRouterGuardsAdmin(t *testing.T) {
	router := newTestRouter(t)

	r := httptest.NewRequest("GET", "/admin/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected anonymous admin access to redirect, got %d", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}
