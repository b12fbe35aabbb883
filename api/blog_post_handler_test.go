package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/vishaldeshmukh2k6/portfolio-backend/database"
	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
)

func createPostVia(t *testing.T, h blogPostHandler, title string) models.BlogPost {
	t.Helper()

	values := url.Values{
		"title":     {title},
		"content":   {"some body"},
		"published": {"on"},
	}
	r := httptest.NewRequest("POST", "/admin/blog-post", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.createPost().ServeHTTP(w, r)

	if w.Result().StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Result().StatusCode, w.Body.String())
	}
	var post models.BlogPost
	if err := json.Unmarshal(w.Body.Bytes(), &post); err != nil {
		t.Fatalf("decode created post: %v", err)
	}
	return post
}

func TestCreatePostSlugDerivation(t *testing.T) {
	db := newTestDatabase(t)
	h := newBlogPostHandler(db.BlogPostRepo())

	post := createPostVia(t, h, "Hello, World! 2.0")
	if post.Slug != "hello-world-20" {
		t.Fatalf("expected slug hello-world-20, got %q", post.Slug)
	}
}

func TestCreatePostSlugCollision(t *testing.T) {
	db := newTestDatabase(t)
	h := newBlogPostHandler(db.BlogPostRepo())

	first := createPostVia(t, h, "Same Title")
	second := createPostVia(t, h, "Same Title")
	third := createPostVia(t, h, "Same Title")

	if first.Slug != "same-title" {
		t.Fatalf("expected same-title, got %q", first.Slug)
	}
	if second.Slug != "same-title-1" {
		t.Fatalf("expected same-title-1, got %q", second.Slug)
	}
	if third.Slug != "same-title-2" {
		t.Fatalf("expected same-title-2, got %q", third.Slug)
	}
}

func getPostVia(t *testing.T, h blogPostHandler, slug string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest("GET", "/blog/"+slug, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("slug", slug)
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()
	h.getPost().ServeHTTP(w, r)
	return w
}

func TestGetPostRejectsBadSlugCharset(t *testing.T) {
	db := newTestDatabase(t)
	h := newBlogPostHandler(db.BlogPostRepo())

	w := getPostVia(t, h, "..%2fetc")
	if w.Result().StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for path-like slug, got %d", w.Result().StatusCode)
	}
}

func TestGetPostIncrementsViews(t *testing.T) {
	db := newTestDatabase(t)
	h := newBlogPostHandler(db.BlogPostRepo())

	created := createPostVia(t, h, "Counted Post")

	for i := 0; i < 2; i++ {
		w := getPostVia(t, h, created.Slug)
		if w.Result().StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Result().StatusCode)
		}
	}

	stored, err := db.BlogPostRepo().FindBySlug(created.Slug)
	if err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if stored.Views != 2 {
		t.Fatalf("expected 2 views, got %d", stored.Views)
	}
}

func TestListPostsIgnoresShortQuery(t *testing.T) {
	db := newTestDatabase(t)
	h := newBlogPostHandler(db.BlogPostRepo())
	seedPost(t, db, "Findable", "findable", true)

	r := httptest.NewRequest("GET", "/blog?q=a", nil)
	w := httptest.NewRecorder()
	h.listPosts().ServeHTTP(w, r)

	var listing BlogListing
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	// A one-character query is ignored, so the post still shows up.
	if listing.Total != 1 {
		t.Fatalf("expected the short query to be ignored, got total=%d", listing.Total)
	}
}

func seedPost(t *testing.T, db database.Database, title, slug string, published bool) {
	t.Helper()
	post := models.BlogPost{Title: title, Slug: slug, Content: "body", Published: published}
	if err := db.BlogPostRepo().Add(&post); err != nil {
		t.Fatalf("seed post %q: %v", slug, err)
	}
}
