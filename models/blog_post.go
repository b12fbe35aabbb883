package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPost represents a complete blog post with metadata.
// Tags is a comma-joined list; Slug is unique and URL-safe.
type BlogPost struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt   string    `json:"excerpt" db:"excerpt" gorm:"type:text"`
	Tags      string    `json:"tags" db:"tags" gorm:"type:text"`
	Published bool      `json:"published" db:"published" gorm:"not null;default:false"`
	Featured  bool      `json:"featured" db:"featured" gorm:"not null;default:false"`
	ReadTime  int       `json:"read_time" db:"read_time" gorm:"not null;default:5"`
	Views     int       `json:"views" db:"views" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"not null;autoUpdateTime"`
}

func (b *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TagList splits the comma-joined tag column into trimmed tokens,
// dropping empties.
func (b BlogPost) TagList() []string {
	return SplitTags(b.Tags)
}
