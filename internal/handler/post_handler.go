package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wavely/wavely-backend/internal/common"
	"github.com/wavely/wavely-backend/internal/service"
)

// postReadAction / postWriteAction are the tagged operations of the posts group
type postReadAction string

const (
	postReadActionFeed      postReadAction = "feed"
	postReadActionUserPosts postReadAction = "user_posts"
)

type postWriteAction string

const (
	postWriteActionCreate  postWriteAction = "create"
	postWriteActionLike    postWriteAction = "like"
	postWriteActionComment postWriteAction = "comment"
)

// PostHandler handles feed and interaction requests
type PostHandler struct {
	feedService service.FeedService
	postService service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(feedService service.FeedService, postService service.PostService) *PostHandler {
	return &PostHandler{feedService: feedService, postService: postService}
}

// Get handles GET /api/posts?action=feed|user_posts
func (h *PostHandler) Get(c *gin.Context) {
	action := postReadAction(c.DefaultQuery("action", string(postReadActionFeed)))

	switch action {
	case postReadActionFeed:
		items, err := h.feedService.GetFeed(c.Request.Context())
		if err != nil {
			common.ServiceErrorResponse(c, err)
			return
		}
		common.SuccessResponse(c, gin.H{"posts": items})

	case postReadActionUserPosts:
		userID, err := strconv.ParseUint(c.Query("user_id"), 10, 32)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, common.ErrInvalidInput.Error())
			return
		}
		items, svcErr := h.feedService.GetUserPosts(c.Request.Context(), uint(userID))
		if svcErr != nil {
			common.ServiceErrorResponse(c, svcErr)
			return
		}
		common.SuccessResponse(c, gin.H{"posts": items})

	default:
		common.MethodNotSupported(c)
	}
}

type postWriteRequest struct {
	Action  string `json:"action"`
	UserID  uint   `json:"user_id"`
	PostID  uint   `json:"post_id"`
	Content string `json:"content"`
}

// Post handles POST /api/posts with action create|like|comment
func (h *PostHandler) Post(c *gin.Context) {
	var req postWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	switch postWriteAction(req.Action) {
	case postWriteActionCreate:
		post, err := h.postService.CreatePost(c.Request.Context(), req.UserID, req.Content)
		if err != nil {
			common.ServiceErrorResponse(c, err)
			return
		}
		common.SuccessResponse(c, gin.H{"success": true, "post": post})

	case postWriteActionLike:
		result, err := h.postService.Like(c.Request.Context(), req.UserID, req.PostID)
		if err != nil {
			common.ServiceErrorResponse(c, err)
			return
		}
		common.SuccessResponse(c, result)

	case postWriteActionComment:
		comment, err := h.postService.Comment(c.Request.Context(), req.UserID, req.PostID, req.Content)
		if err != nil {
			common.ServiceErrorResponse(c, err)
			return
		}
		common.SuccessResponse(c, gin.H{"success": true, "comment_id": comment.ID})

	default:
		common.MethodNotSupported(c)
	}
}
