package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wavely/wavely-backend/internal/common"
	"github.com/wavely/wavely-backend/internal/service"
)

// adminReadAction / adminWriteAction are the tagged operations of the admin group
type adminReadAction string

const (
	adminReadActionStats adminReadAction = "stats"
	adminReadActionUsers adminReadAction = "users"
)

type adminWriteAction string

const (
	adminWriteActionBan         adminWriteAction = "ban"
	adminWriteActionUnban       adminWriteAction = "unban"
	adminWriteActionGrantAdmin  adminWriteAction = "grant_admin"
	adminWriteActionRevokeAdmin adminWriteAction = "revoke_admin"
	adminWriteActionUpdateUser  adminWriteAction = "update_user"
)

// AdminHandler handles moderation requests
type AdminHandler struct {
	service service.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(service service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Get handles GET /api/admin?action=stats|users&admin_id=
func (h *AdminHandler) Get(c *gin.Context) {
	adminID, err := strconv.ParseUint(c.Query("admin_id"), 10, 32)
	if err != nil {
		common.ErrorResponse(c, http.StatusForbidden, common.ErrForbidden.Error())
		return
	}

	action := adminReadAction(c.DefaultQuery("action", string(adminReadActionStats)))

	switch action {
	case adminReadActionStats:
		stats, svcErr := h.service.Stats(c.Request.Context(), uint(adminID))
		if svcErr != nil {
			common.ServiceErrorResponse(c, svcErr)
			return
		}
		common.SuccessResponse(c, stats)

	case adminReadActionUsers:
		users, svcErr := h.service.ListUsers(c.Request.Context(), uint(adminID))
		if svcErr != nil {
			common.ServiceErrorResponse(c, svcErr)
			return
		}
		common.SuccessResponseWithMeta(c, gin.H{"users": users}, &common.Meta{Total: int64(len(users))})

	default:
		common.MethodNotSupported(c)
	}
}

type adminWriteRequest struct {
	Action   string  `json:"action"`
	UserID   uint    `json:"user_id"`
	AdminID  uint    `json:"admin_id"`
	FullName *string `json:"full_name"`
	Username *string `json:"username"`
}

// Put handles PUT /api/admin moderation mutations
func (h *AdminHandler) Put(c *gin.Context) {
	var req adminWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	var err error
	var message string

	switch adminWriteAction(req.Action) {
	case adminWriteActionBan:
		err = h.service.Ban(ctx, req.AdminID, req.UserID)
		message = "user banned"
	case adminWriteActionUnban:
		err = h.service.Unban(ctx, req.AdminID, req.UserID)
		message = "user unbanned"
	case adminWriteActionGrantAdmin:
		err = h.service.GrantAdmin(ctx, req.AdminID, req.UserID)
		message = "admin rights granted"
	case adminWriteActionRevokeAdmin:
		err = h.service.RevokeAdmin(ctx, req.AdminID, req.UserID)
		message = "admin rights revoked"
	case adminWriteActionUpdateUser:
		err = h.service.UpdateUser(ctx, req.AdminID, req.UserID, &service.AdminUpdateUserRequest{
			FullName: req.FullName,
			Username: req.Username,
		})
		message = "user updated"
	default:
		common.MethodNotSupported(c)
		return
	}

	if err != nil {
		common.ServiceErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"success": true, "message": message})
}
