package models

import (
	"time"

	"gorm.io/datatypes"
)

// GitHubStats is the singleton cached snapshot of a GitHub account's
// public statistics. Languages keeps the per-language repo tally the
// top language was derived from.
type GitHubStats struct {
	ID          uint           `json:"id" db:"id" gorm:"primaryKey"`
	Username    string         `json:"username" db:"username" gorm:"type:text;not null"`
	PublicRepos int            `json:"public_repos" db:"public_repos" gorm:"not null;default:0"`
	Followers   int            `json:"followers" db:"followers" gorm:"not null;default:0"`
	Following   int            `json:"following" db:"following" gorm:"not null;default:0"`
	TotalStars  int            `json:"total_stars" db:"total_stars" gorm:"not null;default:0"`
	TotalForks  int            `json:"total_forks" db:"total_forks" gorm:"not null;default:0"`
	TopLanguage string         `json:"top_language" db:"top_language" gorm:"type:text"`
	Languages   datatypes.JSON `json:"languages,omitempty" db:"languages"`
	RefreshedAt time.Time      `json:"refreshed_at" db:"refreshed_at" gorm:"not null"`
}

// Stale reports whether the snapshot is older than ttl.
func (s GitHubStats) Stale(ttl time.Duration) bool {
	return time.Since(s.RefreshedAt) > ttl
}
