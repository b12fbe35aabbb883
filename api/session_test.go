package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func newTestSessionManager(t *testing.T) sessionManager {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return newSessionManager("test-secret", "admin", string(hash), false)
}

func TestCheckCredentials(t *testing.T) {
	m := newTestSessionManager(t)

	if err := m.checkCredentials("admin", "hunter2"); err != nil {
		t.Fatalf("expected valid credentials to pass, got %v", err)
	}
	if err := m.checkCredentials("admin", "wrong"); err == nil {
		t.Fatal("expected wrong password to fail")
	}
	if err := m.checkCredentials("root", "hunter2"); err == nil {
		t.Fatal("expected wrong username to fail")
	}
}

func TestRequireAdminAnonymousRedirects(t *testing.T) {
	m := newTestSessionManager(t)

	nextCalled := false
	handler := m.requireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	r := httptest.NewRequest("GET", "/admin/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if nextCalled {
		t.Fatal("handler behind the guard must not run without a session")
	}
	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 redirect, got %d", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestRequireAdminValidSessionSlides(t *testing.T) {
	m := newTestSessionManager(t)

	// Issue a cookie the way a successful login would.
	issue := httptest.NewRecorder()
	if err := m.issueCookie(issue); err != nil {
		t.Fatalf("issue cookie: %v", err)
	}
	cookies := issue.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie to be set")
	}

	nextCalled := false
	handler := m.requireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	r := httptest.NewRequest("GET", "/admin/", nil)
	r.AddCookie(cookies[0])
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if !nextCalled {
		t.Fatal("expected the guarded handler to run")
	}
	// Sliding expiry reissues the cookie on every guarded request.
	if len(w.Result().Cookies()) == 0 {
		t.Fatal("expected the session cookie to be reissued")
	}
}

func TestRequireAdminExpiredSession(t *testing.T) {
	m := newTestSessionManager(t)

	// The exact token issueCookie produces, last touched outside the
	// idle window but still inside the absolute lifetime.
	stale := time.Now().Add(-2 * sessionIdleTimeout)
	token, err := m.signedToken(stale)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	handler := m.requireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler behind the guard must not run with an expired session")
	}))

	r := httptest.NewRequest("GET", "/admin/", nil)
	r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 redirect, got %d", res.StatusCode)
	}

	// The idle session gets the distinct expiry notice, not the plain
	// login warning.
	if flash := flashFrom(t, w); !strings.Contains(flash, "Session expired") {
		t.Fatalf("expected a session expired notice, got %q", flash)
	}

	// The stale cookie must be cleared on the way out.
	cleared := false
	for _, c := range res.Cookies() {
		if c.Name == sessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected the expired session cookie to be cleared")
	}
}

func TestRequireAdminLifetimeCeiling(t *testing.T) {
	m := newTestSessionManager(t)

	// A token past its absolute lifetime is rejected by the JWT layer;
	// it still counts as an expired session and clears the cookie.
	ancient := time.Now().Add(-2 * sessionMaxLifetime)
	token, err := m.signedToken(ancient)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	handler := m.requireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler behind the guard must not run with an expired session")
	}))

	r := httptest.NewRequest("GET", "/admin/", nil)
	r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if flash := flashFrom(t, w); !strings.Contains(flash, "Session expired") {
		t.Fatalf("expected a session expired notice, got %q", flash)
	}
	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected the expired session cookie to be cleared")
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	m := newTestSessionManager(t)

	other := newSessionManager("other-secret", "admin", m.passwordHash, false)
	issue := httptest.NewRecorder()
	if err := other.issueCookie(issue); err != nil {
		t.Fatalf("issue cookie: %v", err)
	}

	r := httptest.NewRequest("GET", "/admin/", nil)
	r.AddCookie(issue.Result().Cookies()[0])
	if err := m.verify(r); err == nil {
		t.Fatal("expected a token signed with another key to fail verification")
	}
}
