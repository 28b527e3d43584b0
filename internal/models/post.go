package models

// Post carries a snapshot of the author's name and avatar taken at creation
// time, so deleted or renamed accounts do not change historical feeds.
type Post struct {
	BaseModel
	UserID string `gorm:"type:uuid;index;not null" json:"user"`
	Text   string `gorm:"not null" json:"text"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`

	// Relations
	Likes    []Like    `gorm:"foreignKey:PostID" json:"likes"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments"`
}

// Like records one user's like on one post. The composite unique index is
// the invariant: at most one like per user per post.
type Like struct {
	BaseModel
	PostID string `gorm:"type:uuid;index;uniqueIndex:idx_likes_post_user;not null" json:"-"`
	UserID string `gorm:"type:uuid;uniqueIndex:idx_likes_post_user;not null" json:"user"`
}

type Comment struct {
	BaseModel
	PostID string `gorm:"type:uuid;index;not null" json:"-"`
	UserID string `gorm:"type:uuid;not null" json:"user"`
	Text   string `gorm:"not null" json:"text"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
