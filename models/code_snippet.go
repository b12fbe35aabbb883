package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CodeSnippet represents a published code sample with a language tag
type CodeSnippet struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text"`
	Language    string    `json:"language" db:"language" gorm:"type:text;not null;index"`
	Code        string    `json:"code" db:"code" gorm:"type:text;not null"`
	Tags        string    `json:"tags" db:"tags" gorm:"type:text"`
	Featured    bool      `json:"featured" db:"featured" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null;autoCreateTime"`
}

func (s *CodeSnippet) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SplitTags splits a comma-joined tag column into trimmed, non-empty tokens.
func SplitTags(joined string) []string {
	if joined == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(joined, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
