package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	sessions  sessionManager
}

func newAuthHandler(sessions sessionManager) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		sessions:  sessions,
	}
}

// loginPage serves the login entry point. A pending flash notice from a
// previous redirect is consumed and included for the frontend to render.
func (h authHandler) loginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{"page": "login"}
		if level, message, ok := h.responder.ConsumeFlash(w, r); ok {
			payload["flash"] = map[string]string{"level": level, "message": message}
		}
		h.responder.WriteJSON(w, payload)
	}
}

// login checks the submitted credentials. Success issues the session
// cookie and lands on the dashboard; failure bounces back to the login
// page with a notice and no cookie.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := parseLoginForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.sessions.checkCredentials(form.Username, form.Password); err != nil {
			h.logger.Warn().Str("username", form.Username).Msg("Failed login attempt")
			h.responder.RedirectWithFlash(w, r, "/login", flashDanger, "Invalid credentials!")
			return
		}

		if err := h.sessions.issueCookie(w); err != nil {
			h.logger.Error().Err(err).Msg("Failed to issue session cookie")
			h.responder.RedirectWithFlash(w, r, "/login", flashDanger, "Login failed, please try again")
			return
		}

		h.logger.Info().Msg("Admin logged in")
		h.responder.RedirectWithFlash(w, r, "/admin", flashSuccess, "Logged in successfully!")
	}
}

// logout clears the session cookie regardless of its current validity.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.sessions.clearCookie(w)
		h.responder.RedirectWithFlash(w, r, "/login", flashSuccess, "Logged out successfully!")
	}
}
