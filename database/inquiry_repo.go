package database

import (
	"github.com/google/uuid"
	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
	"gorm.io/gorm"
)

type InquiryRepo struct {
	db *gorm.DB
}

func NewInquiryRepo(db *gorm.DB) *InquiryRepo {
	return &InquiryRepo{db}
}

// FindAll returns all inquiries, newest first
func (r *InquiryRepo) FindAll() ([]*models.ContactInquiry, error) {
	var inquiries []*models.ContactInquiry
	err := r.db.Order("created_at DESC").Find(&inquiries).Error
	return inquiries, err
}

// FindByID returns an inquiry by its ID
func (r *InquiryRepo) FindByID(id uuid.UUID) (*models.ContactInquiry, error) {
	var inquiry models.ContactInquiry
	err := r.db.First(&inquiry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// Add inserts a new inquiry into the database
func (r *InquiryRepo) Add(inquiry *models.ContactInquiry) error {
	return r.db.Create(inquiry).Error
}

// UpdateStatus sets the status of an existing inquiry. The caller has
// already validated status against the allowed set.
func (r *InquiryRepo) UpdateStatus(id uuid.UUID, status string) error {
	res := r.db.Model(&models.ContactInquiry{}).Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes an inquiry from the database by id
func (r *InquiryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ContactInquiry{}, "id = ?", id).Error
}
