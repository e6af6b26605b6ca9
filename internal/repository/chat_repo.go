package repository

import (
	"context"
	"errors"

	"github.com/wavely/wavely-backend/internal/domain"
	"gorm.io/gorm"
)

// ChatRepository chat data access interface
type ChatRepository interface {
	// FindByPair returns the chat for the unordered user pair, or nil when absent
	FindByPair(ctx context.Context, userA, userB uint) (*domain.Chat, error)
	// CreateWithParticipants inserts the chat and both participant rows in one
	// transaction. Returns gorm.ErrDuplicatedKey when a concurrent caller won
	// the pair-key race; callers should re-fetch.
	CreateWithParticipants(ctx context.Context, chat *domain.Chat, userA, userB uint) error
	// FindPartners returns, for every chat the user participates in, the other
	// participant's user ID keyed by chat ID
	FindPartners(ctx context.Context, userID uint) (map[uint]uint, error)
	// FindRecipients returns the other participants of a chat
	FindRecipients(ctx context.Context, chatID, senderID uint) ([]uint, error)
	// IsParticipant reports whether the user belongs to the chat
	IsParticipant(ctx context.Context, chatID, userID uint) (bool, error)
}

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// FindByPair looks up a chat by its normalized pair key
func (r *chatRepository) FindByPair(ctx context.Context, userA, userB uint) (*domain.Chat, error) {
	var chat domain.Chat
	err := r.db.WithContext(ctx).
		Where("pair_key = ?", domain.PairKey(userA, userB)).
		First(&chat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chat, nil
}

// CreateWithParticipants creates a chat plus its two participant rows
func (r *chatRepository) CreateWithParticipants(ctx context.Context, chat *domain.Chat, userA, userB uint) error {
	chat.PairKey = domain.PairKey(userA, userB)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(chat).Error; err != nil {
			return err
		}
		participants := []domain.ChatParticipant{
			{ChatID: chat.ID, UserID: userA},
			{ChatID: chat.ID, UserID: userB},
		}
		return tx.Create(&participants).Error
	})
}

// partnerRow is the scan target for the partner lookup join
type partnerRow struct {
	ChatID    uint
	PartnerID uint
}

// FindPartners joins the participant table against itself to pair each of the
// user's chats with the opposite participant
func (r *chatRepository) FindPartners(ctx context.Context, userID uint) (map[uint]uint, error) {
	var rows []partnerRow
	err := r.db.WithContext(ctx).
		Table("chat_participants cp1").
		Select("cp1.chat_id AS chat_id, cp2.user_id AS partner_id").
		Joins("JOIN chat_participants cp2 ON cp1.chat_id = cp2.chat_id AND cp2.user_id != cp1.user_id").
		Where("cp1.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	partners := make(map[uint]uint, len(rows))
	for _, row := range rows {
		partners[row.ChatID] = row.PartnerID
	}
	return partners, nil
}

// FindRecipients returns the chat participants other than the sender
func (r *chatRepository) FindRecipients(ctx context.Context, chatID, senderID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&domain.ChatParticipant{}).
		Where("chat_id = ? AND user_id != ?", chatID, senderID).
		Pluck("user_id", &ids).Error
	return ids, err
}

// IsParticipant reports whether the user belongs to the chat
func (r *chatRepository) IsParticipant(ctx context.Context, chatID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ChatParticipant{}).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Count(&count).Error
	return count > 0, err
}
