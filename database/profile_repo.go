package database

import (
	"errors"

	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// Get returns the singleton profile row, or nil when none exists yet.
func (r *ProfileRepo) Get() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", models.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertAge sets the age on the singleton row, creating it on first use.
// Runs in a transaction; concurrent upserts stay serialized by SQLite's
// writer lock.
func (r *ProfileRepo) UpsertAge(age int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		err := tx.First(&profile, "id = ?", models.SingletonID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&models.Profile{ID: models.SingletonID, Age: age}).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&profile).Update("age", age).Error
	})
}
