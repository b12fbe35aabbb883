package database

import (
	"strings"

	"github.com/google/uuid"
	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
	"gorm.io/gorm"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// FindAll returns every post, newest first (admin view)
func (r *BlogPostRepo) FindAll() ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// FindPublished returns one page of published posts, newest first,
// optionally narrowed by a free-text query (title or content substring)
// and an exact tag token. It also reports the total match count so the
// caller can derive the page count.
func (r *BlogPostRepo) FindPublished(page, perPage int, query, tag string) ([]*models.BlogPost, int64, error) {
	q := r.db.Model(&models.BlogPost{}).Where("published = ?", true)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("title LIKE ? OR content LIKE ?", like, like)
	}

	if tag == "" {
		var total int64
		if err := q.Count(&total).Error; err != nil {
			return nil, 0, err
		}
		var posts []*models.BlogPost
		err := q.Order("created_at DESC").
			Limit(perPage).Offset((page - 1) * perPage).
			Find(&posts).Error
		return posts, total, err
	}

	// The exact token check cannot run in SQL; LIKE narrows candidates
	// and the token walk below decides, so this path paginates in Go.
	var posts []*models.BlogPost
	err := q.Where("tags LIKE ?", "%"+tag+"%").
		Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	matched := posts[:0]
	for _, p := range posts {
		if hasTagToken(p.Tags, tag) {
			matched = append(matched, p)
		}
	}
	posts = matched

	total := int64(len(posts))
	start := (page - 1) * perPage
	if start >= len(posts) {
		return nil, total, nil
	}
	end := start + perPage
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end], total, nil
}

// FindFeaturedPublished returns featured published posts, newest first
func (r *BlogPostRepo) FindFeaturedPublished(limit int) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.Where("published = ? AND featured = ?", true, true).
		Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

// FindBySlug returns a published post by its slug
func (r *BlogPostRepo) FindBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Where("slug = ? AND published = ?", slug, true).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByID returns a post by its ID regardless of published state
func (r *BlogPostRepo) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// SlugExists reports whether any post already carries slug
func (r *BlogPostRepo) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// IncrementViews bumps the view counter by exactly one
func (r *BlogPostRepo) IncrementViews(id uuid.UUID) error {
	return r.db.Model(&models.BlogPost{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// FindRelated returns up to limit other published posts carrying the
// given tag token, newest first.
func (r *BlogPostRepo) FindRelated(tag string, excludeID uuid.UUID, limit int) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.Where("published = ? AND id <> ? AND tags LIKE ?", true, excludeID, "%"+tag+"%").
		Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	var related []*models.BlogPost
	for _, p := range posts {
		if hasTagToken(p.Tags, tag) {
			related = append(related, p)
			if len(related) == limit {
				break
			}
		}
	}
	return related, nil
}

// PublishedTags returns the tag columns of every published post
func (r *BlogPostRepo) PublishedTags() ([]string, error) {
	var tags []string
	err := r.db.Model(&models.BlogPost{}).Where("published = ?", true).
		Pluck("tags", &tags).Error
	return tags, err
}

// Add inserts a new blog post into the database
func (r *BlogPostRepo) Add(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// Update updates an existing blog post in the database
func (r *BlogPostRepo) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

// Delete removes a blog post from the database by id
func (r *BlogPostRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BlogPost{}, "id = ?", id).Error
}

// hasTagToken reports whether the comma-joined column contains tag as a
// whole token. Substring hits across token boundaries ("go" against
// "golang") do not count.
func hasTagToken(joined, tag string) bool {
	for _, t := range models.SplitTags(joined) {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
