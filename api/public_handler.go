package api

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vishaldeshmukh2k6/portfolio-backend/database"
	"github.com/vishaldeshmukh2k6/portfolio-backend/errs"
	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
	"github.com/vishaldeshmukh2k6/portfolio-backend/services"
)

const (
	homeProjectCount     = 6
	homeCertificateCount = 6
	homeSkillCount       = 12
	homePostCount        = 3
	homeSnippetCount     = 4

	healthPingTimeout = 2 * time.Second
)

type publicHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
	stats     *services.StatsService
	resume    string
}

func newPublicHandler(db database.Database, stats *services.StatsService, resumePath string) publicHandler {
	logger := log.With().Str("handlerName", "publicHandler").Logger()

	return publicHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
		stats:     stats,
		resume:    resumePath,
	}
}

// HomePage aggregates the landing-page content in one payload
type HomePage struct {
	Projects      []*models.Project     `json:"projects"`
	Certificates  []*models.Certificate `json:"certificates"`
	Skills        []*models.Skill       `json:"skills"`
	FeaturedPosts []*models.BlogPost    `json:"featured_posts"`
	Snippets      []*models.CodeSnippet `json:"featured_snippets"`
	GitHubStats   *models.GitHubStats   `json:"github_stats"`
	Flash         map[string]string     `json:"flash,omitempty"`
}

// home serves the landing page payload. Loading the stats snapshot
// triggers a refresh when it is absent or stale; a refresh failure
// degrades to whatever snapshot exists rather than failing the page.
func (h publicHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.db.ProjectRepo().FindRecent(homeProjectCount)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		certificates, err := h.db.CertificateRepo().FindRecent(homeCertificateCount)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "certificates", err))
			return
		}

		skills, err := h.db.SkillRepo().FindTop(homeSkillCount)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "skills", err))
			return
		}

		posts, err := h.db.BlogPostRepo().FindFeaturedPublished(homePostCount)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "featured posts", err))
			return
		}

		snippets, err := h.db.SnippetRepo().FindFeatured(homeSnippetCount)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "featured snippets", err))
			return
		}

		stats, err := h.stats.Current()
		if err != nil {
			h.logger.Warn().Err(err).Msg("Stats unavailable for home page")
		}

		page := HomePage{
			Projects:      projects,
			Certificates:  certificates,
			Skills:        skills,
			FeaturedPosts: posts,
			Snippets:      snippets,
			GitHubStats:   stats,
		}
		if level, message, ok := h.responder.ConsumeFlash(w, r); ok {
			page.Flash = map[string]string{"level": level, "message": message}
		}
		h.responder.WriteJSON(w, page)
	}
}

// githubStats serves the current snapshot, refreshing first when stale.
func (h publicHandler) githubStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.stats.Current()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, stats)
	}
}

// downloadResume serves the configured PDF as an attachment.
func (h publicHandler) downloadResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(h.resume); err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("resume not available"))
			return
		}

		filename := filepath.Base(h.resume)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		http.ServeFile(w, r, h.resume)
	}
}

// healthz reports liveness plus a database ping.
func (h publicHandler) healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			h.logger.Error().Err(err).Msg("Database ping failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			h.responder.WriteJSON(w, map[string]string{"status": "degraded", "database": "unreachable"})
			return
		}
		h.responder.WriteJSON(w, map[string]string{"status": "ok", "database": "ok"})
	}
}
