package service

import (
	"context"

	"github.com/wavely/wavely-backend/internal/domain"
	"github.com/wavely/wavely-backend/internal/repository"
)

// feedLimit is the fixed size of the global feed
const feedLimit = 50

// FeedService social graph read operations
type FeedService interface {
	GetFeed(ctx context.Context) ([]*domain.FeedItem, error)
	GetUserPosts(ctx context.Context, userID uint) ([]*domain.FeedItem, error)
}

type feedService struct {
	postRepo repository.PostRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(postRepo repository.PostRepository) FeedService {
	return &feedService{postRepo: postRepo}
}

// GetFeed returns the global reverse-chronological feed
func (s *feedService) GetFeed(ctx context.Context) ([]*domain.FeedItem, error) {
	items, err := s.postRepo.Feed(ctx, feedLimit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.FeedItem{}
	}
	return items, nil
}

// GetUserPosts returns one author's posts, newest first
func (s *feedService) GetUserPosts(ctx context.Context, userID uint) ([]*domain.FeedItem, error) {
	items, err := s.postRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.FeedItem{}
	}
	return items, nil
}
