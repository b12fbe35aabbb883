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
	"github.com/vishaldeshmukh2k6/portfolio-backend/sanitize"
)

type snippetHandler struct {
	responder   Responder
	logger      zerolog.Logger
	snippetRepo *database.SnippetRepo
}

func newSnippetHandler(snippetRepo *database.SnippetRepo) snippetHandler {
	logger := log.With().Str("handlerName", "snippetHandler").Logger()

	return snippetHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		snippetRepo: snippetRepo,
	}
}

// SnippetListing represents the snippet listing with the language set
type SnippetListing struct {
	Snippets  []*models.CodeSnippet `json:"snippets"`
	Languages []string              `json:"languages"`
	Total     int                   `json:"total"`
}

// listSnippets serves snippets with an optional exact language filter
// and free-text search.
func (h snippetHandler) listSnippets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		language := sanitize.Text(r.URL.Query().Get("language"))
		query := sanitize.Text(r.URL.Query().Get("q"))
		if len(query) < blogSearchMinLen {
			query = ""
		}

		snippets, err := h.snippetRepo.Find(language, query)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "snippets", err))
			return
		}

		languages, err := h.snippetRepo.Languages()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "snippet languages", err))
			return
		}

		h.responder.WriteJSON(w, SnippetListing{
			Snippets:  snippets,
			Languages: languages,
			Total:     len(snippets),
		})
	}
}

// createSnippet stores the submitted fields verbatim.
func (h snippetHandler) createSnippet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := parseSnippetForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		snippet := models.CodeSnippet{
			Title:       form.Title,
			Description: form.Description,
			Language:    form.Language,
			Code:        form.Code,
			Tags:        form.Tags,
			Featured:    form.Featured,
		}

		if err := h.snippetRepo.Add(&snippet); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "snippet", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, snippet)
	}
}

// deleteSnippet removes a snippet by id.
func (h snippetHandler) deleteSnippet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "snippetID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid snippetID"))
			return
		}

		if _, err := h.snippetRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "snippet", err))
			return
		}

		if err := h.snippetRepo.Delete(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "snippet", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "snippet deleted successfully",
		})
	}
}
