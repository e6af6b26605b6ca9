package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wavely/wavely-backend/internal/common"
	"github.com/wavely/wavely-backend/internal/domain"
	"gorm.io/gorm"
)

func newTestChatService() (*mockChatRepo, *mockMessageRepo, *mockUserRepo, *mockNotificationRepo, ChatService) {
	chatRepo := new(mockChatRepo)
	messageRepo := new(mockMessageRepo)
	userRepo := new(mockUserRepo)
	notifRepo := new(mockNotificationRepo)
	svc := NewChatService(chatRepo, messageRepo, userRepo, notifRepo)
	return chatRepo, messageRepo, userRepo, notifRepo, svc
}

func TestGetOrCreateChat_Existing(t *testing.T) {
	chatRepo, _, _, _, svc := newTestChatService()

	chatRepo.On("FindByPair", mock.Anything, uint(1), uint(2)).
		Return(&domain.Chat{ID: 77}, nil)

	chatID, err := svc.GetOrCreateChat(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, uint(77), chatID)
	chatRepo.AssertNotCalled(t, "CreateWithParticipants", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetOrCreateChat_CreatesWhenAbsent(t *testing.T) {
	chatRepo, _, _, _, svc := newTestChatService()

	chatRepo.On("FindByPair", mock.Anything, uint(1), uint(2)).Return(nil, nil)
	chatRepo.On("CreateWithParticipants", mock.Anything, mock.AnythingOfType("*domain.Chat"), uint(1), uint(2)).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Chat).ID = 78
		}).
		Return(nil)

	chatID, err := svc.GetOrCreateChat(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, uint(78), chatID)
}

func TestGetOrCreateChat_LostRaceConvergesOnWinner(t *testing.T) {
	chatRepo, _, _, _, svc := newTestChatService()

	// first lookup sees nothing, the insert loses the pair-key race,
	// the re-fetch lands on the winner's chat
	chatRepo.On("FindByPair", mock.Anything, uint(1), uint(2)).Return(nil, nil).Once()
	chatRepo.On("CreateWithParticipants", mock.Anything, mock.AnythingOfType("*domain.Chat"), uint(1), uint(2)).
		Return(gorm.ErrDuplicatedKey)
	chatRepo.On("FindByPair", mock.Anything, uint(1), uint(2)).
		Return(&domain.Chat{ID: 79}, nil).Once()

	chatID, err := svc.GetOrCreateChat(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, uint(79), chatID)
	chatRepo.AssertExpectations(t)
}

func TestGetOrCreateChat_RejectsSelfAndZero(t *testing.T) {
	_, _, _, _, svc := newTestChatService()

	_, err := svc.GetOrCreateChat(context.Background(), 3, 3)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.GetOrCreateChat(context.Background(), 0, 3)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestListChats_OrderedByLastMessage(t *testing.T) {
	chatRepo, messageRepo, userRepo, _, svc := newTestChatService()

	now := time.Now()
	chatRepo.On("FindPartners", mock.Anything, uint(1)).
		Return(map[uint]uint{10: 2, 11: 3, 12: 4}, nil)
	userRepo.On("FindSummariesByIDs", mock.Anything, mock.AnythingOfType("[]uint")).
		Return(map[uint]*domain.UserSummary{
			2: {ID: 2}, 3: {ID: 3}, 4: {ID: 4},
		}, nil)
	messageRepo.On("LastMessages", mock.Anything, mock.AnythingOfType("[]uint")).
		Return(map[uint]*domain.Message{
			10: {ChatID: 10, Content: "older", CreatedAt: now.Add(-time.Hour)},
			11: {ChatID: 11, Content: "newest", CreatedAt: now},
			// chat 12 has no messages yet
		}, nil)
	messageRepo.On("CountUnread", mock.Anything, mock.AnythingOfType("[]uint"), uint(1)).
		Return(map[uint]int64{11: 5}, nil)

	chats, err := svc.ListChats(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, chats, 3)
	assert.Equal(t, uint(11), chats[0].ID)
	assert.Equal(t, "newest", chats[0].LastMessage)
	assert.Equal(t, int64(5), chats[0].UnreadCount)
	assert.Equal(t, uint(10), chats[1].ID)
	// the message-less chat sorts last
	assert.Equal(t, uint(12), chats[2].ID)
	assert.Nil(t, chats[2].LastMessageTime)
}

func TestListChats_Empty(t *testing.T) {
	chatRepo, _, _, _, svc := newTestChatService()

	chatRepo.On("FindPartners", mock.Anything, uint(1)).Return(map[uint]uint{}, nil)

	chats, err := svc.ListChats(context.Background(), 1)

	assert.NoError(t, err)
	assert.NotNil(t, chats)
	assert.Empty(t, chats)
}

func TestListMessages_MarksForeignMessagesRead(t *testing.T) {
	chatRepo, messageRepo, userRepo, _, svc := newTestChatService()

	chatRepo.On("IsParticipant", mock.Anything, uint(10), uint(1)).Return(true, nil)
	messages := []*domain.Message{
		{ID: 1, ChatID: 10, SenderID: 2, Content: "hi", IsRead: false},
		{ID: 2, ChatID: 10, SenderID: 1, Content: "hey", IsRead: true},
	}
	messageRepo.On("ListByChat", mock.Anything, uint(10)).Return(messages, nil)
	userRepo.On("FindSummariesByIDs", mock.Anything, []uint{2, 1}).
		Return(map[uint]*domain.UserSummary{1: {ID: 1}, 2: {ID: 2}}, nil)
	messageRepo.On("MarkRead", mock.Anything, uint(10), uint(1)).Return(nil)

	result, err := svc.ListMessages(context.Background(), 10, 1)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, uint(2), result[0].Sender.ID)
	messageRepo.AssertCalled(t, "MarkRead", mock.Anything, uint(10), uint(1))
}

func TestSendMessage_NotifiesRecipients(t *testing.T) {
	chatRepo, messageRepo, _, notifRepo, svc := newTestChatService()

	chatRepo.On("IsParticipant", mock.Anything, uint(10), uint(1)).Return(true, nil)
	messageRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Message")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Message).ID = 55
		}).
		Return(nil)
	chatRepo.On("FindRecipients", mock.Anything, uint(10), uint(1)).Return([]uint{2}, nil)
	notifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == 2 && n.Type == domain.NotificationTypeMessage && n.RelatedUserID == 1
	})).Return(nil)

	result, err := svc.SendMessage(context.Background(), 10, 1, "hello")

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, uint(55), result.MessageID)
	notifRepo.AssertExpectations(t)
}

func TestSendMessage_EmptyContent(t *testing.T) {
	_, _, _, _, svc := newTestChatService()

	result, err := svc.SendMessage(context.Background(), 10, 1, "  ")
	assert.ErrorIs(t, err, common.ErrEmptyContent)
	assert.Nil(t, result)
}

func TestListMessages_NonParticipantSeesNoChat(t *testing.T) {
	chatRepo, messageRepo, _, _, svc := newTestChatService()

	chatRepo.On("IsParticipant", mock.Anything, uint(10), uint(9)).Return(false, nil)

	result, err := svc.ListMessages(context.Background(), 10, 9)

	assert.ErrorIs(t, err, common.ErrChatNotFound)
	assert.Nil(t, result)
	// an outsider's view must not flip anyone's read flags
	messageRepo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything, mock.Anything)
	messageRepo.AssertNotCalled(t, "ListByChat", mock.Anything, mock.Anything)
}

func TestSendMessage_NonParticipantRejected(t *testing.T) {
	chatRepo, messageRepo, _, _, svc := newTestChatService()

	chatRepo.On("IsParticipant", mock.Anything, uint(10), uint(9)).Return(false, nil)

	result, err := svc.SendMessage(context.Background(), 10, 9, "let me in")

	assert.ErrorIs(t, err, common.ErrChatNotFound)
	assert.Nil(t, result)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
