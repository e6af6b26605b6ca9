package domain

import "time"

// Message domain model (messages table).
// IsRead transitions false→true only, in bulk, when the non-sender
// lists the chat.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ChatID    uint      `gorm:"index;not null" json:"chat_id"`
	SenderID  uint      `gorm:"not null" json:"sender_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

// MessageResponse is a message with its sender summary
type MessageResponse struct {
	ID        uint         `json:"id"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	IsRead    bool         `json:"is_read"`
	Sender    *UserSummary `json:"sender"`
}

// SendMessageResponse is returned after sending a message
type SendMessageResponse struct {
	Success   bool      `json:"success"`
	MessageID uint      `json:"message_id"`
	CreatedAt time.Time `json:"created_at"`
}
