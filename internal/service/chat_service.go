package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/wavely/wavely-backend/internal/common"
	"github.com/wavely/wavely-backend/internal/domain"
	"github.com/wavely/wavely-backend/internal/repository"
	"github.com/wavely/wavely-backend/pkg/logger"
	"gorm.io/gorm"
)

// ChatService direct-messaging business logic
type ChatService interface {
	GetOrCreateChat(ctx context.Context, userA, userB uint) (uint, error)
	ListChats(ctx context.Context, userID uint) ([]*domain.ChatSummary, error)
	ListMessages(ctx context.Context, chatID, viewerID uint) ([]*domain.MessageResponse, error)
	SendMessage(ctx context.Context, chatID, senderID uint, content string) (*domain.SendMessageResponse, error)
}

type chatService struct {
	chatRepo    repository.ChatRepository
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	notifRepo   repository.NotificationRepository
}

// NewChatService creates a new ChatService
func NewChatService(chatRepo repository.ChatRepository, messageRepo repository.MessageRepository, userRepo repository.UserRepository, notifRepo repository.NotificationRepository) ChatService {
	return &chatService{
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		notifRepo:   notifRepo,
	}
}

// GetOrCreateChat returns the chat for the unordered pair, creating it when
// absent. Two concurrent creators race on the pair-key unique index; the
// loser sees the duplicate-key conflict and re-fetches, so every caller
// converges on the same chat ID.
func (s *chatService) GetOrCreateChat(ctx context.Context, userA, userB uint) (uint, error) {
	if userA == userB || userA == 0 || userB == 0 {
		return 0, common.ErrInvalidInput
	}

	chat, err := s.chatRepo.FindByPair(ctx, userA, userB)
	if err != nil {
		return 0, err
	}
	if chat != nil {
		return chat.ID, nil
	}

	fresh := &domain.Chat{}
	err = s.chatRepo.CreateWithParticipants(ctx, fresh, userA, userB)
	if err == nil {
		return fresh.ID, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return 0, err
	}

	// a concurrent caller created the chat first
	chat, err = s.chatRepo.FindByPair(ctx, userA, userB)
	if err != nil {
		return 0, err
	}
	if chat == nil {
		return 0, common.ErrChatNotFound
	}
	return chat.ID, nil
}

// ListChats returns the user's chat list with partner summary, last message
// and unread count, ordered by last-message time descending; chats without
// messages sort last.
func (s *chatService) ListChats(ctx context.Context, userID uint) ([]*domain.ChatSummary, error) {
	partners, err := s.chatRepo.FindPartners(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(partners) == 0 {
		return []*domain.ChatSummary{}, nil
	}

	chatIDs := make([]uint, 0, len(partners))
	partnerIDs := make([]uint, 0, len(partners))
	for chatID, partnerID := range partners {
		chatIDs = append(chatIDs, chatID)
		partnerIDs = append(partnerIDs, partnerID)
	}

	summaries, err := s.userRepo.FindSummariesByIDs(ctx, partnerIDs)
	if err != nil {
		return nil, err
	}
	lastMessages, err := s.messageRepo.LastMessages(ctx, chatIDs)
	if err != nil {
		return nil, err
	}
	unread, err := s.messageRepo.CountUnread(ctx, chatIDs, userID)
	if err != nil {
		return nil, err
	}

	chats := make([]*domain.ChatSummary, 0, len(partners))
	for chatID, partnerID := range partners {
		summary := &domain.ChatSummary{
			ID:          chatID,
			User:        summaries[partnerID],
			UnreadCount: unread[chatID],
		}
		if last, ok := lastMessages[chatID]; ok {
			summary.LastMessage = last.Content
			t := last.CreatedAt
			summary.LastMessageTime = &t
		}
		chats = append(chats, summary)
	}

	sort.Slice(chats, func(i, j int) bool {
		a, b := chats[i].LastMessageTime, chats[j].LastMessageTime
		switch {
		case a == nil && b == nil:
			return chats[i].ID > chats[j].ID
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return chats[i].ID > chats[j].ID
		default:
			return a.After(*b)
		}
	})

	return chats, nil
}

// requireParticipant hides chats from non-participants: a chat the caller
// does not belong to is indistinguishable from one that does not exist
func (s *chatService) requireParticipant(ctx context.Context, chatID, userID uint) error {
	ok, err := s.chatRepo.IsParticipant(ctx, chatID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrChatNotFound
	}
	return nil
}

// ListMessages returns a chat's messages in chronological order and, as a
// side effect of viewing, marks everything not sent by the viewer as read.
func (s *chatService) ListMessages(ctx context.Context, chatID, viewerID uint) ([]*domain.MessageResponse, error) {
	if err := s.requireParticipant(ctx, chatID, viewerID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.ListByChat(ctx, chatID)
	if err != nil {
		return nil, err
	}

	senderIDs := make([]uint, 0, len(messages))
	seen := make(map[uint]bool, 4)
	for _, msg := range messages {
		if !seen[msg.SenderID] {
			seen[msg.SenderID] = true
			senderIDs = append(senderIDs, msg.SenderID)
		}
	}

	senders, err := s.userRepo.FindSummariesByIDs(ctx, senderIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.MessageResponse, len(messages))
	for i, msg := range messages {
		responses[i] = &domain.MessageResponse{
			ID:        msg.ID,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
			IsRead:    msg.IsRead,
			Sender:    senders[msg.SenderID],
		}
	}

	if err := s.messageRepo.MarkRead(ctx, chatID, viewerID); err != nil {
		return nil, err
	}

	return responses, nil
}

// SendMessage appends a message and fans out a notification to each other
// participant of the chat
func (s *chatService) SendMessage(ctx context.Context, chatID, senderID uint, content string) (*domain.SendMessageResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, common.ErrEmptyContent
	}
	if err := s.requireParticipant(ctx, chatID, senderID); err != nil {
		return nil, err
	}

	msg := &domain.Message{ChatID: chatID, SenderID: senderID, Content: content}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	recipients, err := s.chatRepo.FindRecipients(ctx, chatID, senderID)
	if err != nil {
		logger.Get().Warn().Err(err).Uint("chat_id", chatID).Msg("recipient lookup failed, skipping notification")
	}
	for _, recipient := range recipients {
		notification := &domain.Notification{
			UserID:        recipient,
			Type:          domain.NotificationTypeMessage,
			Content:       "sent you a message",
			RelatedUserID: senderID,
		}
		if err := s.notifRepo.Create(ctx, notification); err != nil {
			logger.Get().Warn().
				Err(err).
				Uint("user_id", recipient).
				Msg("notification delivery failed")
		}
	}

	return &domain.SendMessageResponse{
		Success:   true,
		MessageID: msg.ID,
		CreatedAt: msg.CreatedAt,
	}, nil
}
