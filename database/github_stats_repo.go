package database

import (
	"errors"

	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
	"gorm.io/gorm"
)

type GitHubStatsRepo struct {
	db *gorm.DB
}

func NewGitHubStatsRepo(db *gorm.DB) *GitHubStatsRepo {
	return &GitHubStatsRepo{db}
}

// Get returns the singleton stats snapshot, or nil when no refresh has
// ever succeeded (and no default has been written).
func (r *GitHubStatsRepo) Get() (*models.GitHubStats, error) {
	var stats models.GitHubStats
	err := r.db.First(&stats, "id = ?", models.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Upsert writes the snapshot to the singleton row, creating it on the
// first refresh.
func (r *GitHubStatsRepo) Upsert(stats *models.GitHubStats) error {
	stats.ID = models.SingletonID
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.GitHubStats
		err := tx.First(&existing, "id = ?", models.SingletonID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(stats).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&existing).Select("*").Omit("id").Updates(stats).Error
	})
}
