package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vishaldeshmukh2k6/portfolio-backend/database"
	"github.com/vishaldeshmukh2k6/portfolio-backend/errs"
)

type inquiryHandler struct {
	responder   Responder
	logger      zerolog.Logger
	inquiryRepo *database.InquiryRepo
}

func newInquiryHandler(inquiryRepo *database.InquiryRepo) inquiryHandler {
	logger := log.With().Str("handlerName", "inquiryHandler").Logger()

	return inquiryHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		inquiryRepo: inquiryRepo,
	}
}

func (h inquiryHandler) listInquiries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inquiries, err := h.inquiryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "inquiries", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"inquiries": inquiries,
			"total":     len(inquiries),
		})
	}
}

// updateStatus sets an inquiry's status; the value must be one of the
// enumerated statuses.
func (h inquiryHandler) updateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "inquiryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid inquiryID"))
			return
		}

		form, err := parseInquiryStatusForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.inquiryRepo.UpdateStatus(id, form.Status); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "inquiry", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "inquiry status updated",
		})
	}
}

func (h inquiryHandler) deleteInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "inquiryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid inquiryID"))
			return
		}

		if _, err := h.inquiryRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "inquiry", err))
			return
		}

		if err := h.inquiryRepo.Delete(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "inquiry", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "inquiry deleted successfully",
		})
	}
}
