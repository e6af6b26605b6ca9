package repository

import (
	"context"

	"github.com/wavely/wavely-backend/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository message data access interface
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListByChat(ctx context.Context, chatID uint) ([]*domain.Message, error)
	// MarkRead flips every unread message in the chat not sent by the viewer.
	// Already-read rows are untouched, so repeated calls are no-ops.
	MarkRead(ctx context.Context, chatID, viewerID uint) error
	// LastMessages returns the newest message per chat
	LastMessages(ctx context.Context, chatIDs []uint) (map[uint]*domain.Message, error)
	// CountUnread returns, per chat, the unread messages not sent by the viewer
	CountUnread(ctx context.Context, chatIDs []uint, viewerID uint) (map[uint]int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create creates a new message
func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// ListByChat returns a chat's messages in chronological order
func (r *messageRepository) ListByChat(ctx context.Context, chatID uint) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}

// MarkRead marks all messages in the chat not sent by the viewer as read
func (r *messageRepository) MarkRead(ctx context.Context, chatID, viewerID uint) error {
	return r.db.WithContext(ctx).
		Model(&domain.Message{}).
		Where("chat_id = ? AND sender_id != ? AND is_read = ?", chatID, viewerID, false).
		Update("is_read", true).Error
}

// LastMessages returns one row per chat, the newest, via DISTINCT ON so the
// database never materializes a chat's full history
func (r *messageRepository) LastMessages(ctx context.Context, chatIDs []uint) (map[uint]*domain.Message, error) {
	result := make(map[uint]*domain.Message, len(chatIDs))
	if len(chatIDs) == 0 {
		return result, nil
	}

	var messages []*domain.Message
	err := r.db.WithContext(ctx).
		Model(&domain.Message{}).
		Select("DISTINCT ON (chat_id) *").
		Where("chat_id IN ?", chatIDs).
		Order("chat_id, created_at DESC, id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	for _, msg := range messages {
		result[msg.ChatID] = msg
	}
	return result, nil
}

// unreadRow is the scan target for the grouped unread count query
type unreadRow struct {
	ChatID uint
	Count  int64
}

// CountUnread groups unread foreign messages by chat
func (r *messageRepository) CountUnread(ctx context.Context, chatIDs []uint, viewerID uint) (map[uint]int64, error) {
	result := make(map[uint]int64, len(chatIDs))
	if len(chatIDs) == 0 {
		return result, nil
	}

	var rows []unreadRow
	err := r.db.WithContext(ctx).
		Model(&domain.Message{}).
		Select("chat_id, COUNT(*) AS count").
		Where("chat_id IN ? AND sender_id != ? AND is_read = ?", chatIDs, viewerID, false).
		Group("chat_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ChatID] = row.Count
	}
	return result, nil
}
