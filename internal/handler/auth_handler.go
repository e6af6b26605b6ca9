package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wavely/wavely-backend/internal/common"
	"github.com/wavely/wavely-backend/internal/domain"
	"github.com/wavely/wavely-backend/internal/middleware"
	"github.com/wavely/wavely-backend/internal/service"
)

// authAction is the tagged operation carried by the action field
type authAction string

const (
	authActionRegister authAction = "register"
	authActionLogin    authAction = "login"
)

// AuthHandler handles identity requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type authPostRequest struct {
	Action   string `json:"action"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// Post handles POST /api/auth with action register|login
func (h *AuthHandler) Post(c *gin.Context) {
	var req authPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	switch authAction(req.Action) {
	case authActionRegister:
		h.register(c, &req)
	case authActionLogin:
		h.login(c, &req)
	default:
		common.MethodNotSupported(c)
	}
}

func (h *AuthHandler) register(c *gin.Context, req *authPostRequest) {
	user, err := h.service.Register(c.Request.Context(), &service.RegisterRequest{
		Phone:    req.Phone,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		common.ServiceErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"success": true, "user": user})
}

func (h *AuthHandler) login(c *gin.Context, req *authPostRequest) {
	result, err := h.service.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		common.ServiceErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, result)
}

// GetProfile handles GET /api/auth?user_id=
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 32)
	if err != nil {
		common.ErrorResponse(c, http.StatusNotFound, common.ErrUserNotFound.Error())
		return
	}

	profile, svcErr := h.service.GetProfile(c.Request.Context(), uint(userID))
	if svcErr != nil {
		common.ServiceErrorResponse(c, svcErr)
		return
	}
	common.SuccessResponse(c, profile)
}

// UpdateProfile handles PUT /api/auth with optional profile fields
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		common.ServiceErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"success": true, "user": user})
}

// Me handles GET /api/auth/me for the authenticated user
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, common.ErrUnauthorized.Error())
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		common.ServiceErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, profile)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.service.RefreshTokens(c.Request.Context(), req.RefreshToken)
	if err != nil {
		common.ServiceErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, pair)
}

// Logout handles POST /api/auth/logout for the authenticated user
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.GetToken(c)
	if token == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, common.ErrUnauthorized.Error())
		return
	}

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		common.ServiceErrorResponse(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"success": true})
}
