package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vishaldeshmukh2k6/portfolio-backend/database"
	"github.com/vishaldeshmukh2k6/portfolio-backend/errs"
	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
)

type certificateHandler struct {
	responder       Responder
	logger          zerolog.Logger
	certificateRepo *database.CertificateRepo
}

func newCertificateHandler(certificateRepo *database.CertificateRepo) certificateHandler {
	logger := log.With().Str("handlerName", "certificateHandler").Logger()

	return certificateHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		certificateRepo: certificateRepo,
	}
}

func (h certificateHandler) createCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := parseCertificateForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		certificate := models.Certificate{
			Title:      form.Title,
			Issuer:     form.Issuer,
			IssuedDate: form.IssuedDate,
		}
		if form.Link != "" {
			certificate.Link = &form.Link
		}

		if err := h.certificateRepo.Add(&certificate); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "certificate", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, certificate)
	}
}

func (h certificateHandler) deleteCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "certificateID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid certificateID"))
			return
		}

		if _, err := h.certificateRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "certificate", err))
			return
		}

		if err := h.certificateRepo.Delete(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "certificate", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "certificate deleted successfully",
		})
	}
}
