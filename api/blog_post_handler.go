package api

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vishaldeshmukh2k6/portfolio-backend/database"
	"github.com/vishaldeshmukh2k6/portfolio-backend/errs"
	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
	"github.com/vishaldeshmukh2k6/portfolio-backend/sanitize"
)

const (
	blogPageSize      = 6
	blogSearchMinLen  = 2
	relatedPostsCap   = 3
	relatedTagsCap    = 2
	slugSuffixRetries = 100
)

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
	}
}

// BlogListing represents one page of published posts plus the tag set
type BlogListing struct {
	Posts      []*models.BlogPost `json:"posts"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	Total      int64              `json:"total"`
	TotalPages int                `json:"total_pages"`
	Tags       []string           `json:"tags"`
}

// BlogDetail represents a single post with its related posts
type BlogDetail struct {
	Post    *models.BlogPost   `json:"post"`
	Related []*models.BlogPost `json:"related"`
}

// listPosts serves the paginated blog listing with optional free-text
// search and tag filter.
func (h blogPostHandler) listPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}

		query := sanitize.Text(r.URL.Query().Get("q"))
		if len(query) < blogSearchMinLen {
			query = ""
		}
		tag := sanitize.Text(r.URL.Query().Get("tag"))

		posts, total, err := h.blogPostRepo.FindPublished(page, blogPageSize, query, tag)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog posts", err))
			return
		}

		tags, err := h.allTags()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		totalPages := int((total + blogPageSize - 1) / blogPageSize)
		h.responder.WriteJSON(w, BlogListing{
			Posts:      posts,
			Page:       page,
			PageSize:   blogPageSize,
			Total:      total,
			TotalPages: totalPages,
			Tags:       tags,
		})
	}
}

// getPost serves a published post by slug. The slug charset is checked
// before the database is touched, so path-like slugs are a plain 404.
// The view counter increment is best effort.
func (h blogPostHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if !sanitize.ValidSlug(slug) {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		post, err := h.blogPostRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog post", err))
			return
		}

		if err := h.blogPostRepo.IncrementViews(post.ID); err != nil {
			h.logger.Warn().Err(err).Str("slug", slug).Msg("Failed to increment view counter")
		} else {
			post.Views++
		}

		related, err := h.relatedPosts(post)
		if err != nil {
			h.logger.Warn().Err(err).Str("slug", slug).Msg("Failed to load related posts")
		}

		h.responder.WriteJSON(w, BlogDetail{Post: post, Related: related})
	}
}

// relatedPosts walks the first two tags of post and collects up to three
// other published posts sharing one, deduplicated by identity.
func (h blogPostHandler) relatedPosts(post *models.BlogPost) ([]*models.BlogPost, error) {
	tags := post.TagList()
	if len(tags) > relatedTagsCap {
		tags = tags[:relatedTagsCap]
	}

	seen := map[uuid.UUID]bool{post.ID: true}
	var related []*models.BlogPost
	for _, tag := range tags {
		matches, err := h.blogPostRepo.FindRelated(tag, post.ID, relatedPostsCap)
		if err != nil {
			return related, err
		}
		for _, match := range matches {
			if seen[match.ID] {
				continue
			}
			seen[match.ID] = true
			related = append(related, match)
			if len(related) == relatedPostsCap {
				return related, nil
			}
		}
	}
	return related, nil
}

// allTags returns the deduplicated, sanitized tag set across every
// published post.
func (h blogPostHandler) allTags() ([]string, error) {
	columns, err := h.blogPostRepo.PublishedTags()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog tags", err)
	}

	seen := make(map[string]bool)
	var tags []string
	for _, column := range columns {
		for _, tag := range models.SplitTags(column) {
			tag = sanitize.Text(tag)
			key := strings.ToLower(tag)
			if tag == "" || seen[key] {
				continue
			}
			seen[key] = true
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// createPost adds a blog post, deriving a unique slug from the title.
func (h blogPostHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := parseBlogPostForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		slug, err := h.uniqueSlug(form.Title)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post := models.BlogPost{
			Title:     form.Title,
			Slug:      slug,
			Content:   form.Content,
			Excerpt:   form.Excerpt,
			Tags:      form.Tags,
			Published: form.Published,
			Featured:  form.Featured,
			ReadTime:  form.ReadTime,
		}

		if err := h.blogPostRepo.Add(&post); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "blog post", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, post)
	}
}

// uniqueSlug slugifies title and appends a numeric suffix until the
// result is unused.
func (h blogPostHandler) uniqueSlug(title string) (string, error) {
	base := sanitize.Slugify(title)
	if base == "" {
		return "", errs.NewInvalidFieldError("title", "produces an empty slug")
	}

	slug := base
	for i := 1; i <= slugSuffixRetries; i++ {
		exists, err := h.blogPostRepo.SlugExists(slug)
		if err != nil {
			return "", errs.NewDatabaseError("check slug for", "blog post", err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
	return "", errs.NewConflictError("could not derive a unique slug")
}

// deletePost removes a post; other posts are never re-slugged.
func (h blogPostHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "blogPostID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogPostID"))
			return
		}

		if _, err := h.blogPostRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog post", err))
			return
		}

		if err := h.blogPostRepo.Delete(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post deleted successfully",
		})
	}
}
