package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wavely/wavely-backend/internal/common"
	"github.com/wavely/wavely-backend/internal/service"
)

// notificationAction is the tagged operation of the notifications group
type notificationAction string

const (
	notificationActionMarkRead    notificationAction = "mark_read"
	notificationActionMarkAllRead notificationAction = "mark_all_read"
)

// NotificationHandler handles notification inbox requests
type NotificationHandler struct {
	service service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(service service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// Get handles GET /api/notifications?user_id= (list) and ?action=unread_count
func (h *NotificationHandler) Get(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 32)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, common.ErrInvalidInput.Error())
		return
	}

	if c.Query("action") == "unread_count" {
		count, svcErr := h.service.UnreadCount(c.Request.Context(), uint(userID))
		if svcErr != nil {
			common.ServiceErrorResponse(c, svcErr)
			return
		}
		common.SuccessResponse(c, gin.H{"total_unread": count})
		return
	}

	notifications, svcErr := h.service.List(c.Request.Context(), uint(userID))
	if svcErr != nil {
		common.ServiceErrorResponse(c, svcErr)
		return
	}
	common.SuccessResponse(c, gin.H{"notifications": notifications})
}

type notificationWriteRequest struct {
	Action         string `json:"action"`
	NotificationID uint   `json:"notification_id"`
	UserID         uint   `json:"user_id"`
}

// Post handles POST /api/notifications with action mark_read|mark_all_read
func (h *NotificationHandler) Post(c *gin.Context) {
	var req notificationWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	switch notificationAction(req.Action) {
	case notificationActionMarkRead:
		if err := h.service.MarkRead(c.Request.Context(), req.NotificationID); err != nil {
			common.ServiceErrorResponse(c, err)
			return
		}
		common.SuccessResponse(c, gin.H{"success": true})

	case notificationActionMarkAllRead:
		if err := h.service.MarkAllRead(c.Request.Context(), req.UserID); err != nil {
			common.ServiceErrorResponse(c, err)
			return
		}
		common.SuccessResponse(c, gin.H{"success": true})

	default:
		common.MethodNotSupported(c)
	}
}
