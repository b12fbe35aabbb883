package database

import (
	"github.com/google/uuid"
	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
	"gorm.io/gorm"
)

type CertificateRepo struct {
	db *gorm.DB
}

func NewCertificateRepo(db *gorm.DB) *CertificateRepo {
	return &CertificateRepo{db}
}

// FindAll returns all certificates, newest first
func (r *CertificateRepo) FindAll() ([]*models.Certificate, error) {
	var certificates []*models.Certificate
	err := r.db.Order("rowid DESC").Find(&certificates).Error
	return certificates, err
}

// FindRecent returns the newest certificates, capped at limit
func (r *CertificateRepo) FindRecent(limit int) ([]*models.Certificate, error) {
	var certificates []*models.Certificate
	err := r.db.Order("rowid DESC").Limit(limit).Find(&certificates).Error
	return certificates, err
}

// FindByID returns a certificate by its ID
func (r *CertificateRepo) FindByID(id uuid.UUID) (*models.Certificate, error) {
	var certificate models.Certificate
	err := r.db.First(&certificate, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &certificate, nil
}

// Add inserts a new certificate into the database
func (r *CertificateRepo) Add(certificate *models.Certificate) error {
	return r.db.Create(certificate).Error
}

// Delete removes a certificate from the database by id
func (r *CertificateRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Certificate{}, "id = ?", id).Error
}
