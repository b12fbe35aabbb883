package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inquiry categories, priorities and statuses. Status updates are
// validated against these sets before touching the database.
const (
	InquiryCategoryGeneral       = "general"
	InquiryCategoryProject       = "project"
	InquiryCategoryJob           = "job"
	InquiryCategoryCollaboration = "collaboration"

	InquiryPriorityLow    = "low"
	InquiryPriorityNormal = "normal"
	InquiryPriorityHigh   = "high"

	InquiryStatusNew     = "new"
	InquiryStatusRead    = "read"
	InquiryStatusReplied = "replied"
	InquiryStatusClosed  = "closed"
)

// ContactInquiry represents a contact-form submission with its derived
// priority and admin-managed status.
type ContactInquiry struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Subject   string    `json:"subject" db:"subject" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	Category  string    `json:"category" db:"category" gorm:"type:text;not null;default:general"`
	Priority  string    `json:"priority" db:"priority" gorm:"type:text;not null;default:normal"`
	Status    string    `json:"status" db:"status" gorm:"type:text;not null;default:new"`
	IP        string    `json:"ip" db:"ip" gorm:"type:text"`
	UserAgent string    `json:"user_agent" db:"user_agent" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null;autoCreateTime"`
}

func (i *ContactInquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// ValidInquiryCategory reports whether category is one of the known
// inquiry categories.
func ValidInquiryCategory(category string) bool {
	switch category {
	case InquiryCategoryGeneral, InquiryCategoryProject, InquiryCategoryJob, InquiryCategoryCollaboration:
		return true
	}
	return false
}

// ValidInquiryStatus reports whether status is one of the known
// inquiry statuses.
func ValidInquiryStatus(status string) bool {
	switch status {
	case InquiryStatusNew, InquiryStatusRead, InquiryStatusReplied, InquiryStatusClosed:
		return true
	}
	return false
}
