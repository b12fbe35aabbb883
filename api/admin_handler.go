package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vishaldeshmukh2k6/portfolio-backend/database"
	"github.com/vishaldeshmukh2k6/portfolio-backend/errs"
	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
	"github.com/vishaldeshmukh2k6/portfolio-backend/services"
)

const dashboardRecentCount = 20

type adminHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
	stats     *services.StatsService
}

func newAdminHandler(db database.Database, stats *services.StatsService) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		stats:     stats,
	}
}

// Dashboard aggregates the recent activity shown on the admin landing page
type Dashboard struct {
	VisitorLogs     []*models.VisitorLog     `json:"visitor_logs"`
	Projects        []*models.Project        `json:"projects"`
	ProductMessages []*models.ProductMessage `json:"product_messages"`
	Certificates    []*models.Certificate    `json:"certificates"`
	Inquiries       []*models.ContactInquiry `json:"inquiries"`
	Age             int                      `json:"age"`
	CurrentYear     int                      `json:"current_year"`
	Flash           map[string]string        `json:"flash,omitempty"`
}

// dashboard serves the admin landing payload: the twenty most recent rows
// of each monitored table plus the profile age and current year.
func (h adminHandler) dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logs, err := h.db.VisitorLogRepo().FindRecent(dashboardRecentCount)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "visitor logs", err))
			return
		}

		projects, err := h.db.ProjectRepo().FindRecent(dashboardRecentCount)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		messages, err := h.db.ProductMessageRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "product messages", err))
			return
		}
		if len(messages) > dashboardRecentCount {
			messages = messages[:dashboardRecentCount]
		}

		certificates, err := h.db.CertificateRepo().FindRecent(dashboardRecentCount)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "certificates", err))
			return
		}

		inquiries, err := h.db.InquiryRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "inquiries", err))
			return
		}
		if len(inquiries) > dashboardRecentCount {
			inquiries = inquiries[:dashboardRecentCount]
		}

		age := models.ProfileDefaultAge
		profile, err := h.db.ProfileRepo().Get()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("load", "profile", err))
			return
		}
		if profile != nil {
			age = profile.Age
		}

		dashboard := Dashboard{
			VisitorLogs:     logs,
			Projects:        projects,
			ProductMessages: messages,
			Certificates:    certificates,
			Inquiries:       inquiries,
			Age:             age,
			CurrentYear:     time.Now().Year(),
		}
		if level, message, ok := h.responder.ConsumeFlash(w, r); ok {
			dashboard.Flash = map[string]string{"level": level, "message": message}
		}
		h.responder.WriteJSON(w, dashboard)
	}
}

// updateAge upserts the singleton profile row.
func (h adminHandler) updateAge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := parseAgeForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.db.ProfileRepo().UpsertAge(form.Age); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("upsert", "profile", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"age":    form.Age,
		})
	}
}

// deleteProductMessage removes a product message by id.
func (h adminHandler) deleteProductMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "messageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
			return
		}

		if _, err := h.db.ProductMessageRepo().FindByID(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "product message", err))
			return
		}

		if err := h.db.ProductMessageRepo().Delete(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "product message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "product message deleted successfully",
		})
	}
}

// refreshStats forces a GitHub stats refresh regardless of staleness.
func (h adminHandler) refreshStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.stats.Refresh()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, stats)
	}
}
