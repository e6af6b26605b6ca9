package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wavely/wavely-backend/internal/common"
	"github.com/wavely/wavely-backend/internal/service"
)

// messageReadAction / messageWriteAction are the tagged operations of the
// messages group
type messageReadAction string

const (
	messageReadActionChats    messageReadAction = "chats"
	messageReadActionMessages messageReadAction = "messages"
)

type messageWriteAction string

const (
	messageWriteActionCreateChat messageWriteAction = "create_chat"
	messageWriteActionSend       messageWriteAction = "send"
)

// MessageHandler handles direct-messaging requests
type MessageHandler struct {
	service service.ChatService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(service service.ChatService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Get handles GET /api/messages?action=chats|messages
func (h *MessageHandler) Get(c *gin.Context) {
	action := messageReadAction(c.DefaultQuery("action", string(messageReadActionChats)))

	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 32)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, common.ErrInvalidInput.Error())
		return
	}

	switch action {
	case messageReadActionChats:
		chats, svcErr := h.service.ListChats(c.Request.Context(), uint(userID))
		if svcErr != nil {
			common.ServiceErrorResponse(c, svcErr)
			return
		}
		common.SuccessResponse(c, gin.H{"chats": chats})

	case messageReadActionMessages:
		chatID, parseErr := strconv.ParseUint(c.Query("chat_id"), 10, 32)
		if parseErr != nil {
			common.ErrorResponse(c, http.StatusBadRequest, common.ErrInvalidInput.Error())
			return
		}
		messages, svcErr := h.service.ListMessages(c.Request.Context(), uint(chatID), uint(userID))
		if svcErr != nil {
			common.ServiceErrorResponse(c, svcErr)
			return
		}
		common.SuccessResponse(c, gin.H{"messages": messages})

	default:
		common.MethodNotSupported(c)
	}
}

type messageWriteRequest struct {
	Action   string `json:"action"`
	User1ID  uint   `json:"user1_id"`
	User2ID  uint   `json:"user2_id"`
	ChatID   uint   `json:"chat_id"`
	SenderID uint   `json:"sender_id"`
	Content  string `json:"content"`
}

// Post handles POST /api/messages with action create_chat|send
func (h *MessageHandler) Post(c *gin.Context) {
	var req messageWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	switch messageWriteAction(req.Action) {
	case messageWriteActionCreateChat:
		chatID, err := h.service.GetOrCreateChat(c.Request.Context(), req.User1ID, req.User2ID)
		if err != nil {
			common.ServiceErrorResponse(c, err)
			return
		}
		common.SuccessResponse(c, gin.H{"chat_id": chatID})

	case messageWriteActionSend:
		result, err := h.service.SendMessage(c.Request.Context(), req.ChatID, req.SenderID, req.Content)
		if err != nil {
			common.ServiceErrorResponse(c, err)
			return
		}
		common.SuccessResponse(c, result)

	default:
		common.MethodNotSupported(c)
	}
}
