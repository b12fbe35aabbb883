package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill proficiency and experience bounds, enforced at write time.
const (
	SkillProficiencyMin = 1
	SkillProficiencyMax = 100
	SkillExperienceMin  = 0.0
	SkillExperienceMax  = 50.0
)

// Skill represents a skill grouped by a free-text category tag
type Skill struct {
	ID              uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Name            string    `json:"name" db:"name" gorm:"type:text;not null"`
	Category        string    `json:"category" db:"category" gorm:"type:text;not null;index"`
	Proficiency     int       `json:"proficiency" db:"proficiency" gorm:"not null"`
	YearsExperience float64   `json:"years_experience" db:"years_experience" gorm:"not null;default:0"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
