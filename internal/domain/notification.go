package domain

import "time"

// Notification types
const (
	NotificationTypeMessage = "message"
	NotificationTypeLike    = "like"
	NotificationTypeComment = "comment"
)

// Notification domain model (notifications table).
// Append-only for producers; only the owner flips is_read.
type Notification struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	Type          string    `gorm:"size:16;not null" json:"type"`
	Content       string    `gorm:"size:255" json:"content"`
	RelatedUserID uint      `gorm:"not null" json:"related_user_id"`
	RelatedPostID *uint     `json:"related_post_id,omitempty"`
	IsRead        bool      `gorm:"default:false" json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

// NotificationResponse is a notification joined with its triggering actor
type NotificationResponse struct {
	ID        uint         `json:"id"`
	Type      string       `json:"type"`
	Content   string       `json:"content"`
	IsRead    bool         `json:"is_read"`
	CreatedAt time.Time    `json:"created_at"`
	User      *UserSummary `json:"user"`
}
