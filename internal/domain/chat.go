package domain

import (
	"fmt"
	"time"
)

// Chat domain model (chats table). Exactly two participants.
// PairKey is the normalized unordered participant pair; its unique index
// guarantees at most one chat per pair even under concurrent creation.
type Chat struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PairKey   string    `gorm:"uniqueIndex;size:64;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Chat) TableName() string {
	return "chats"
}

// ChatParticipant domain model (chat_participants table)
type ChatParticipant struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ChatID uint `gorm:"index;not null" json:"chat_id"`
	UserID uint `gorm:"index;not null" json:"user_id"`
}

func (ChatParticipant) TableName() string {
	return "chat_participants"
}

// PairKey normalizes two user IDs into the canonical unordered pair key
func PairKey(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}

// ChatSummary is one entry of a user's chat list
type ChatSummary struct {
	ID              uint         `json:"id"`
	User            *UserSummary `json:"user"`
	LastMessage     string       `json:"last_message,omitempty"`
	LastMessageTime *time.Time   `json:"last_message_time,omitempty"`
	UnreadCount     int64        `json:"unread_count"`
}
