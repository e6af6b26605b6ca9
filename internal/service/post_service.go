package service

import (
	"context"
	"errors"
	"strings"

	"github.com/wavely/wavely-backend/internal/common"
	"github.com/wavely/wavely-backend/internal/domain"
	"github.com/wavely/wavely-backend/internal/repository"
	"github.com/wavely/wavely-backend/pkg/logger"
	"gorm.io/gorm"
)

// PostService interaction business logic: posts, likes, comments and their
// notification fan-out
type PostService interface {
	CreatePost(ctx context.Context, userID uint, content string) (*domain.CreatePostResponse, error)
	Like(ctx context.Context, userID, postID uint) (*domain.LikeResponse, error)
	Comment(ctx context.Context, userID, postID uint, content string) (*domain.Comment, error)
}

type postService struct {
	postRepo    repository.PostRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
	notifRepo   repository.NotificationRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repository.PostRepository, likeRepo repository.LikeRepository, commentRepo repository.CommentRepository, notifRepo repository.NotificationRepository) PostService {
	return &postService{
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		notifRepo:   notifRepo,
	}
}

// CreatePost creates a new post
func (s *postService) CreatePost(ctx context.Context, userID uint, content string) (*domain.CreatePostResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, common.ErrEmptyContent
	}

	post := &domain.Post{UserID: userID, Content: content}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return &domain.CreatePostResponse{ID: post.ID, CreatedAt: post.CreatedAt}, nil
}

// Like inserts a like for (user, post). A duplicate attempt reports success
// with the already-liked marker. A fresh like on someone else's post fans
// out a notification to the author after the like row is committed.
func (s *postService) Like(ctx context.Context, userID, postID uint) (*domain.LikeResponse, error) {
	created, err := s.likeRepo.Create(ctx, &domain.PostLike{PostID: postID, UserID: userID})
	if err != nil {
		return nil, err
	}
	if !created {
		return &domain.LikeResponse{Success: true, AlreadyLiked: true, Message: "already liked"}, nil
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// like row references a post that vanished; nothing to notify
			return &domain.LikeResponse{Success: true}, nil
		}
		return nil, err
	}

	if post.UserID != userID {
		s.notify(ctx, &domain.Notification{
			UserID:        post.UserID,
			Type:          domain.NotificationTypeLike,
			Content:       "liked your post",
			RelatedUserID: userID,
			RelatedPostID: &postID,
		})
	}

	return &domain.LikeResponse{Success: true}, nil
}

// Comment appends a comment and fans out a notification to the post author
func (s *postService) Comment(ctx context.Context, userID, postID uint, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, common.ErrEmptyContent
	}

	comment := &domain.Comment{PostID: postID, UserID: userID, Content: content}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err == nil && post.UserID != userID {
		s.notify(ctx, &domain.Notification{
			UserID:        post.UserID,
			Type:          domain.NotificationTypeComment,
			Content:       "commented on your post",
			RelatedUserID: userID,
			RelatedPostID: &postID,
		})
	}

	return comment, nil
}

// notify emits a notification best-effort: a failure is logged, never
// surfaced, and never rolls back the primary action
func (s *postService) notify(ctx context.Context, notification *domain.Notification) {
	if err := s.notifRepo.Create(ctx, notification); err != nil {
		logger.Get().Warn().
			Err(err).
			Str("type", notification.Type).
			Uint("user_id", notification.UserID).
			Msg("notification delivery failed")
	}
}
