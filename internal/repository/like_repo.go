package repository

import (
	"context"
	"errors"

	"github.com/wavely/wavely-backend/internal/domain"
	"gorm.io/gorm"
)

// LikeRepository like data access interface
type LikeRepository interface {
	// Create inserts a like. Returns created=false without error when the
	// (post, user) pair already exists; the unique index makes the insert
	// idempotent under concurrency.
	Create(ctx context.Context, like *domain.PostLike) (created bool, err error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts a like, treating a duplicate-key conflict as "already liked"
func (r *likeRepository) Create(ctx context.Context, like *domain.PostLike) (bool, error) {
	err := r.db.WithContext(ctx).Create(like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
