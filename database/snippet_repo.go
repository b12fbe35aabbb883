package database

import (
	"github.com/google/uuid"
	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
	"gorm.io/gorm"
)

type SnippetRepo struct {
	db *gorm.DB
}

func NewSnippetRepo(db *gorm.DB) *SnippetRepo {
	return &SnippetRepo{db}
}

// Find returns snippets newest first, optionally filtered by an exact
// language match and a free-text query over title and description.
func (r *SnippetRepo) Find(language, query string) ([]*models.CodeSnippet, error) {
	q := r.db.Model(&models.CodeSnippet{})
	if language != "" {
		q = q.Where("language = ?", language)
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	var snippets []*models.CodeSnippet
	err := q.Order("created_at DESC").Find(&snippets).Error
	return snippets, err
}

// FindFeatured returns featured snippets, newest first, capped at limit
func (r *SnippetRepo) FindFeatured(limit int) ([]*models.CodeSnippet, error) {
	var snippets []*models.CodeSnippet
	err := r.db.Where("featured = ?", true).
		Order("created_at DESC").Limit(limit).Find(&snippets).Error
	return snippets, err
}

// Languages returns the distinct set of languages present
func (r *SnippetRepo) Languages() ([]string, error) {
	var languages []string
	err := r.db.Model(&models.CodeSnippet{}).Distinct("language").
		Order("language").Pluck("language", &languages).Error
	return languages, err
}

// FindByID returns a snippet by its ID
func (r *SnippetRepo) FindByID(id uuid.UUID) (*models.CodeSnippet, error) {
	var snippet models.CodeSnippet
	err := r.db.First(&snippet, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &snippet, nil
}

// Add inserts a new snippet into the database
func (r *SnippetRepo) Add(snippet *models.CodeSnippet) error {
	return r.db.Create(snippet).Error
}

// Delete removes a snippet from the database by id
func (r *SnippetRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CodeSnippet{}, "id = ?", id).Error
}
