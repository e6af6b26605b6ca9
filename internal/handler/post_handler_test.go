package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wavely/wavely-backend/internal/domain"
)

type mockFeedService struct {
	mock.Mock
}

func (m *mockFeedService) GetFeed(ctx context.Context) ([]*domain.FeedItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FeedItem), args.Error(1)
}

func (m *mockFeedService) GetUserPosts(ctx context.Context, userID uint) ([]*domain.FeedItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FeedItem), args.Error(1)
}

type mockPostService struct {
	mock.Mock
}

func (m *mockPostService) CreatePost(ctx context.Context, userID uint, content string) (*domain.CreatePostResponse, error) {
	args := m.Called(ctx, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreatePostResponse), args.Error(1)
}

func (m *mockPostService) Like(ctx context.Context, userID, postID uint) (*domain.LikeResponse, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LikeResponse), args.Error(1)
}

func (m *mockPostService) Comment(ctx context.Context, userID, postID uint, content string) (*domain.Comment, error) {
	args := m.Called(ctx, userID, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func newPostTestRouter(feedSvc *mockFeedService, postSvc *mockPostService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPostHandler(feedSvc, postSvc)
	router := gin.New()
	router.GET("/api/posts", h.Get)
	router.POST("/api/posts", h.Post)
	return router
}

func TestPostGet_DefaultsToFeed(t *testing.T) {
	feedSvc := new(mockFeedService)
	feedSvc.On("GetFeed", mock.Anything).Return([]*domain.FeedItem{{ID: 1}}, nil)
	router := newPostTestRouter(feedSvc, new(mockPostService))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"posts"`)
	feedSvc.AssertExpectations(t)
}

func TestPostGet_UserPostsRequiresUserID(t *testing.T) {
	router := newPostTestRouter(new(mockFeedService), new(mockPostService))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts?action=user_posts", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostGet_UnknownAction(t *testing.T) {
	router := newPostTestRouter(new(mockFeedService), new(mockPostService))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts?action=bogus", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "method not supported")
}

func TestPostPost_Like(t *testing.T) {
	postSvc := new(mockPostService)
	postSvc.On("Like", mock.Anything, uint(1), uint(5)).
		Return(&domain.LikeResponse{Success: true}, nil)
	router := newPostTestRouter(new(mockFeedService), postSvc)

	body := strings.NewReader(`{"action":"like","user_id":1,"post_id":5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	postSvc.AssertExpectations(t)
}

func TestPostPost_UnknownAction(t *testing.T) {
	router := newPostTestRouter(new(mockFeedService), new(mockPostService))

	body := strings.NewReader(`{"action":"upvote","user_id":1,"post_id":5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestPostPost_MalformedBody(t *testing.T) {
	router := newPostTestRouter(new(mockFeedService), new(mockPostService))

	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
