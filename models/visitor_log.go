package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitorLog records origin metadata for an inbound request.
// Rows are append-only; the application never updates or deletes them.
type VisitorLog struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	IP        string    `json:"ip" db:"ip" gorm:"type:text"`
	UserAgent string    `json:"user_agent" db:"user_agent" gorm:"type:text"`
	Path      string    `json:"path" db:"path" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp" db:"timestamp" gorm:"not null;autoCreateTime;index"`
}

func (v *VisitorLog) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
