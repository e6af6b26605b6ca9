package domain

import "time"

// PostLike domain model (post_likes table).
// The composite unique index collapses concurrent duplicate likes into one
// row; the losing writer sees a duplicate-key error and treats it as success.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"uniqueIndex:idx_post_likes_post_user;not null" json:"post_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_post_likes_post_user;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostLike) TableName() string {
	return "post_likes"
}
