package api

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/vishaldeshmukh2k6/portfolio-backend/errs"
)

const (
	sessionCookieName = "portfolio_session"

	// sessionIdleTimeout is the sliding window after which a session with
	// no protected-route access counts as expired.
	sessionIdleTimeout = time.Hour

	// sessionMaxLifetime caps a token's absolute validity. It must exceed
	// the idle window so the idle check, not the JWT exp claim, decides
	// when a session has gone stale.
	sessionMaxLifetime = 12 * time.Hour
)

// sessionClaims is the signed payload of the session cookie: the admin
// flag plus the last protected-route access time the sliding expiry is
// computed from.
type sessionClaims struct {
	Admin        bool  `json:"admin"`
	LastActivity int64 `json:"last_activity"`
	jwt.RegisteredClaims
}

// sessionManager issues and verifies the admin session cookie and guards
// the admin route group.
type sessionManager struct {
	secret       []byte
	adminUser    string
	passwordHash string
	cookieSecure bool
	responder    Responder
}

func newSessionManager(secret, adminUser, passwordHash string, cookieSecure bool) sessionManager {
	logger := log.With().Str("handlerName", "sessionManager").Logger()
	return sessionManager{
		secret:       []byte(secret),
		adminUser:    adminUser,
		passwordHash: passwordHash,
		cookieSecure: cookieSecure,
		responder:    NewResponder(logger),
	}
}

// checkCredentials verifies the submitted admin credentials against the
// configured username and bcrypt hash.
func (m sessionManager) checkCredentials(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(m.adminUser)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(m.passwordHash), []byte(password))
	if !userOK || passErr != nil {
		return errs.NewInvalidCredentialsError()
	}
	return nil
}

// signedToken builds the session token as of now. Split out so tests can
// produce tokens with an arbitrary last-activity time.
func (m sessionManager) signedToken(now time.Time) (string, error) {
	claims := sessionClaims{
		Admin:        true,
		LastActivity: now.Unix(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionMaxLifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// issueCookie writes a fresh session cookie with LastActivity set to now.
// The cookie outlives the idle window so an idle session still reaches
// the server and gets the distinct "session expired" treatment.
func (m sessionManager) issueCookie(w http.ResponseWriter) error {
	token, err := m.signedToken(time.Now())
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionMaxLifetime.Seconds()),
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// clearCookie drops all session state.
func (m sessionManager) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// verify parses the session cookie and enforces the idle window.
func (m sessionManager) verify(r *http.Request) error {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return errs.Unauthorized
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(cookie.Value, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidSession
		}
		return m.secret, nil
	})
	if err != nil {
		// A token past its absolute lifetime is an expired session, not
		// a forged one.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return errs.NewSessionExpiredError()
		}
		return errs.NewInvalidSessionError(err)
	}
	if !token.Valid || !claims.Admin {
		return errs.NewInvalidSessionError(nil)
	}

	idle := time.Since(time.Unix(claims.LastActivity, 0))
	if idle > sessionIdleTimeout {
		return errs.NewSessionExpiredError()
	}
	return nil
}

// requireAdmin gates the admin route group. Anonymous access redirects
// to the login entry point with a warning; an expired session clears the
// cookie and redirects with a distinct notice. Valid access slides the
// idle window forward by reissuing the cookie.
func (m sessionManager) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := m.verify(r); err != nil {
			if errs.IsSessionExpired(err) {
				m.clearCookie(w)
				m.responder.RedirectWithFlash(w, r, "/login", flashWarning, "Session expired, please login again")
				return
			}
			m.responder.RedirectWithFlash(w, r, "/login", flashWarning, "Please login first!")
			return
		}

		// Sliding expiration: every guarded access refreshes the window.
		if err := m.issueCookie(w); err != nil {
			m.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to refresh session", err))
			return
		}
		next.ServeHTTP(w, r)
	})
}
