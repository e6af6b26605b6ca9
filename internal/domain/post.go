package domain

import "time"

// Post domain model (posts table). Posts are immutable once created.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (Post) TableName() string {
	return "posts"
}

// FeedItem is a post enriched with its author and aggregate counts
type FeedItem struct {
	ID        uint         `json:"id"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	Author    *UserSummary `json:"author,omitempty"`
	Likes     int64        `json:"likes"`
	Comments  int64        `json:"comments"`
}

// CreatePostResponse is returned after creating a post
type CreatePostResponse struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeResponse reports the outcome of a like attempt.
// A duplicate like is success with AlreadyLiked set, not an error.
type LikeResponse struct {
	Success      bool   `json:"success"`
	AlreadyLiked bool   `json:"already_liked,omitempty"`
	Message      string `json:"message,omitempty"`
}
