package models

// SingletonID addresses the single well-known row of singleton tables
// (Profile, GitHubStats).
const SingletonID = 1

// ProfileDefaultAge is reported when no profile row has been written yet.
const ProfileDefaultAge = 18

// Profile holds the singleton profile data shown on the public site.
type Profile struct {
	ID  uint `json:"id" db:"id" gorm:"primaryKey"`
	Age int  `json:"age" db:"age" gorm:"not null;default:18"`
}
