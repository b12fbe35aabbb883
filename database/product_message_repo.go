package database

import (
	"github.com/google/uuid"
	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProductMessageRepo struct {
	db *gorm.DB
}

func NewProductMessageRepo(db *gorm.DB) *ProductMessageRepo {
	return &ProductMessageRepo{db}
}

// FindAll returns all product messages, newest first
func (r *ProductMessageRepo) FindAll() ([]*models.ProductMessage, error) {
	var messages []*models.ProductMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// FindByID returns a product message by its ID
func (r *ProductMessageRepo) FindByID(id uuid.UUID) (*models.ProductMessage, error) {
	var message models.ProductMessage
	err := r.db.First(&message, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Add inserts a new product message into the database
func (r *ProductMessageRepo) Add(message *models.ProductMessage) error {
	return r.db.Create(message).Error
}

// Delete removes a product message from the database by id
func (r *ProductMessageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProductMessage{}, "id = ?", id).Error
}
