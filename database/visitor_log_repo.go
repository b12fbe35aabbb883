package database

import (
	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
	"gorm.io/gorm"
)

type VisitorLogRepo struct {
	db *gorm.DB
}

func NewVisitorLogRepo(db *gorm.DB) *VisitorLogRepo {
	return &VisitorLogRepo{db}
}

// Add appends a visitor log row. Rows are never updated or deleted by
// the application; retention is an operator concern.
func (r *VisitorLogRepo) Add(log *models.VisitorLog) error {
	return r.db.Create(log).Error
}

// FindRecent returns the most recent visitor logs, capped at limit
func (r *VisitorLogRepo) FindRecent(limit int) ([]*models.VisitorLog, error) {
	var logs []*models.VisitorLog
	err := r.db.Order("timestamp DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
