package models

import (
	"time"

	"github.com/lib/pq"
)

// Profile is the single public profile owned by a user. Experience and
// education are owned child collections keyed by their own ids; readers see
// them newest-first.
type Profile struct {
	BaseModel
	UserID         string         `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Company        string         `json:"company"`
	Website        string         `json:"website"`
	Location       string         `json:"location"`
	Status         string         `gorm:"not null" json:"status"`
	Skills         pq.StringArray `gorm:"type:text[]" json:"skills"`
	Bio            string         `json:"bio"`
	GithubUsername string         `json:"githubusername"`
	Social         SocialLinks    `gorm:"embedded;embeddedPrefix:social_" json:"social"`

	// Relations
	User       *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Experience []Experience `gorm:"foreignKey:ProfileID" json:"experience"`
	Education  []Education  `gorm:"foreignKey:ProfileID" json:"education"`
}

// SocialLinks holds the profile's social URLs, all https-forced on write.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

type Experience struct {
	BaseModel
	ProfileID   string     `gorm:"type:uuid;index;not null" json:"-"`
	Title       string     `gorm:"not null" json:"title"`
	Company     string     `gorm:"not null" json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `gorm:"not null" json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type Education struct {
	BaseModel
	ProfileID    string     `gorm:"type:uuid;index;not null" json:"-"`
	School       string     `gorm:"not null" json:"school"`
	Degree       string     `gorm:"not null" json:"degree"`
	FieldOfStudy string     `gorm:"not null" json:"fieldofstudy"`
	From         time.Time  `gorm:"not null" json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}
