package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Certificate represents an earned certificate. IssuedDate is free-text
// so entries like "Summer 2023" survive round trips.
type Certificate struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Title      string    `json:"title" db:"title" gorm:"type:text;not null"`
	Issuer     string    `json:"issuer" db:"issuer" gorm:"type:text;not null"`
	IssuedDate string    `json:"issued_date" db:"issued_date" gorm:"type:text;not null"`
	Link       *string   `json:"link,omitempty" db:"link" gorm:"type:text"`
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
