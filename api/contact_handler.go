package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vishaldeshmukh2k6/portfolio-backend/database"
	"github.com/vishaldeshmukh2k6/portfolio-backend/errs"
	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
	"github.com/vishaldeshmukh2k6/portfolio-backend/sanitize"
	"github.com/vishaldeshmukh2k6/portfolio-backend/services"
)

// spamTerms is the fixed denylist; a hit drops the submission without
// persisting anything.
var spamTerms = []string{
	"viagra",
	"casino",
	"lottery",
	"bitcoin investment",
	"crypto profit",
	"free money",
	"click here",
	"seo service",
}

// urgencyTerms escalate a submission to high priority when found in the
// message or subject.
var urgencyTerms = []string{
	"urgent",
	"asap",
	"immediately",
	"right away",
	"deadline",
}

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	inquiryRepo *database.InquiryRepo
	messageRepo *database.ProductMessageRepo
	mailer      services.Mailer
	notifyTo    string
}

func newContactHandler(inquiryRepo *database.InquiryRepo, messageRepo *database.ProductMessageRepo, mailer services.Mailer, notifyTo string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		inquiryRepo: inquiryRepo,
		messageRepo: messageRepo,
		mailer:      mailer,
		notifyTo:    notifyTo,
	}
}

// submitContact runs the contact pipeline: sanitize, validate in order,
// derive priority, persist, then notify. The inquiry row is committed
// before the mail attempt, so a relay failure keeps the record and only
// degrades the user-facing notice.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := parseContactForm(r)
		if err != nil {
			h.responder.RedirectWithFlash(w, r, "/", flashDanger, "Invalid contact submission")
			return
		}

		if msg, ok := h.validate(form); !ok {
			h.responder.RedirectWithFlash(w, r, "/", flashDanger, msg)
			return
		}

		if containsAny(form.Message, spamTerms) {
			// Nothing is persisted for spam; the submitter sees a
			// generic notice.
			h.logger.Warn().Str("ip", ctxGetClientInfo(r).IP).Msg("Contact submission rejected as spam")
			h.responder.RedirectWithFlash(w, r, "/", flashDanger, "Your message could not be accepted")
			return
		}

		info := ctxGetClientInfo(r)
		inquiry := models.ContactInquiry{
			Name:      form.Name,
			Email:     form.Email,
			Subject:   form.Subject,
			Message:   form.Message,
			Category:  form.Category,
			Priority:  derivePriority(form.Message, form.Subject),
			Status:    models.InquiryStatusNew,
			IP:        info.IP,
			UserAgent: truncate(info.UserAgent, maxUserAgentLength),
		}

		if err := h.inquiryRepo.Add(&inquiry); err != nil {
			h.logger.Error().Err(err).Msg("Failed to persist contact inquiry")
			h.responder.RedirectWithFlash(w, r, "/", flashDanger, "Something went wrong, please try again later")
			return
		}

		body := fmt.Sprintf("From: %s\nEmail: %s\nCategory: %s\nPriority: %s\n\nMessage:\n%s",
			inquiry.Name, inquiry.Email, inquiry.Category, inquiry.Priority, inquiry.Message)
		subject := fmt.Sprintf("Portfolio Contact from %s", inquiry.Name)
		if err := h.mailer.Send(subject, body, []string{h.notifyTo}); err != nil {
			// The inquiry is already committed; report the send failure
			// without losing the record.
			h.logger.Error().Err(err).Str("inquiryID", inquiry.ID.String()).Msg("Notification email failed after inquiry was stored")
			h.responder.RedirectWithFlash(w, r, "/", flashDanger, "Error sending message, please try again later")
			return
		}

		h.responder.RedirectWithFlash(w, r, "/", flashSuccess, "Message sent successfully!")
	}
}

// validate applies the ordered rules; the first failure wins.
func (h contactHandler) validate(form contactForm) (string, bool) {
	if form.Name == "" || form.Email == "" || form.Message == "" {
		return "Please fill all fields!", false
	}
	if !sanitize.ValidEmail(form.Email) {
		return "Please provide a valid email address", false
	}
	if len(form.Name) < 2 {
		return "Name must be at least 2 characters", false
	}
	if len(form.Message) < 10 {
		return "Message must be at least 10 characters", false
	}
	return "", true
}

// submitProductMessage accepts feedback about a named product.
func (h contactHandler) submitProductMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := parseProductMessageForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message := models.ProductMessage{Product: form.Product, Message: form.Message}
		if err := h.messageRepo.Add(&message); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "product message", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message received",
		})
	}
}

// derivePriority escalates to high when the message or subject carries
// an urgency keyword.
func derivePriority(message, subject string) string {
	if containsAny(message, urgencyTerms) || containsAny(subject, urgencyTerms) {
		return models.InquiryPriorityHigh
	}
	return models.InquiryPriorityNormal
}

func containsAny(text string, terms []string) bool {
	lowered := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}
