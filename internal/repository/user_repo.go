package repository

import (
	"context"

	"github.com/wavely/wavely-backend/internal/domain"
	"gorm.io/gorm"
)

// UserRepository user data access interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	FindSummariesByIDs(ctx context.Context, ids []uint) (map[uint]*domain.UserSummary, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Count(ctx context.Context) (int64, error)
	CountBanned(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user. Phone and username uniqueness is enforced by
// the store; a conflict surfaces as gorm.ErrDuplicatedKey.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID finds a user by ID
func (r *userRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByPhone finds a user by phone number
func (r *userRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindSummariesByIDs returns user summaries keyed by user ID
func (r *userRepository) FindSummariesByIDs(ctx context.Context, ids []uint) (map[uint]*domain.UserSummary, error) {
	result := make(map[uint]*domain.UserSummary, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var users []domain.User
	err := r.db.WithContext(ctx).
		Select("id", "full_name", "username", "avatar_url").
		Where("id IN ?", ids).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	for i := range users {
		result[users[i].ID] = users[i].ToSummary()
	}
	return result, nil
}

// FindAll returns all users, newest first
func (r *userRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

// UpdateFields applies a partial field update
func (r *userRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Count returns the total number of users
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&count).Error
	return count, err
}

// CountBanned returns the number of banned users
func (r *userRepository) CountBanned(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("is_banned = ?", true).
		Count(&count).Error
	return count, err
}
