package repository

import (
	"context"
	"time"

	"github.com/wavely/wavely-backend/internal/domain"
	"gorm.io/gorm"
)

// PostRepository post data access interface
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id uint) (*domain.Post, error)
	Feed(ctx context.Context, limit int) ([]*domain.FeedItem, error)
	FindByUser(ctx context.Context, userID uint) ([]*domain.FeedItem, error)
	Count(ctx context.Context) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// feedRow is the flat scan target for the feed aggregation query
type feedRow struct {
	ID              uint
	Content         string
	CreatedAt       time.Time
	AuthorID        uint
	AuthorFullName  string
	AuthorUsername  string
	AuthorAvatarURL string
	Likes           int64
	Comments        int64
}

// Create creates a new post
func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// FindByID finds a post by ID
func (r *postRepository) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	var post domain.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Feed returns the global reverse-chronological feed with author summary and
// like/comment aggregates. Ties in created_at break by id for determinism.
func (r *postRepository) Feed(ctx context.Context, limit int) ([]*domain.FeedItem, error) {
	var rows []feedRow
	err := r.db.WithContext(ctx).
		Table("posts p").
		Select(`p.id, p.content, p.created_at,
			u.id AS author_id, u.full_name AS author_full_name,
			u.username AS author_username, u.avatar_url AS author_avatar_url,
			COUNT(DISTINCT pl.id) AS likes,
			COUNT(DISTINCT c.id) AS comments`).
		Joins("JOIN users u ON p.user_id = u.id").
		Joins("LEFT JOIN post_likes pl ON p.id = pl.post_id").
		Joins("LEFT JOIN comments c ON p.id = c.post_id").
		Group("p.id, p.content, p.created_at, u.id, u.full_name, u.username, u.avatar_url").
		Order("p.created_at DESC, p.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]*domain.FeedItem, len(rows))
	for i, row := range rows {
		items[i] = &domain.FeedItem{
			ID:        row.ID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			Author: &domain.UserSummary{
				ID:        row.AuthorID,
				FullName:  row.AuthorFullName,
				Username:  row.AuthorUsername,
				AvatarURL: row.AuthorAvatarURL,
			},
			Likes:    row.Likes,
			Comments: row.Comments,
		}
	}
	return items, nil
}

// FindByUser returns one author's posts with aggregates, newest first
func (r *postRepository) FindByUser(ctx context.Context, userID uint) ([]*domain.FeedItem, error) {
	var rows []feedRow
	err := r.db.WithContext(ctx).
		Table("posts p").
		Select(`p.id, p.content, p.created_at,
			COUNT(DISTINCT pl.id) AS likes,
			COUNT(DISTINCT c.id) AS comments`).
		Joins("LEFT JOIN post_likes pl ON p.id = pl.post_id").
		Joins("LEFT JOIN comments c ON p.id = c.post_id").
		Where("p.user_id = ?", userID).
		Group("p.id, p.content, p.created_at").
		Order("p.created_at DESC, p.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]*domain.FeedItem, len(rows))
	for i, row := range rows {
		items[i] = &domain.FeedItem{
			ID:        row.ID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			Likes:     row.Likes,
			Comments:  row.Comments,
		}
	}
	return items, nil
}

// Count returns the total number of posts
func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Post{}).Count(&count).Error
	return count, err
}
