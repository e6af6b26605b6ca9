package service

import (
	"context"
	"errors"
	"strings"

	"github.com/wavely/wavely-backend/internal/common"
	"github.com/wavely/wavely-backend/internal/domain"
	"github.com/wavely/wavely-backend/internal/repository"
	"gorm.io/gorm"
)

// AdminStats moderation dashboard counters
type AdminStats struct {
	UsersCount  int64 `json:"users_count"`
	PostsCount  int64 `json:"posts_count"`
	BannedCount int64 `json:"banned_count"`
}

// AdminUpdateUserRequest carries the moderator-editable user fields
type AdminUpdateUserRequest struct {
	FullName *string `json:"full_name"`
	Username *string `json:"username"`
}

// AdminService privileged moderation operations. Every mutation requires
// the acting user to currently hold the admin flag.
type AdminService interface {
	Stats(ctx context.Context, actorID uint) (*AdminStats, error)
	ListUsers(ctx context.Context, actorID uint) ([]*domain.AdminUserResponse, error)
	Ban(ctx context.Context, actorID, targetID uint) error
	Unban(ctx context.Context, actorID, targetID uint) error
	GrantAdmin(ctx context.Context, actorID, targetID uint) error
	RevokeAdmin(ctx context.Context, actorID, targetID uint) error
	UpdateUser(ctx context.Context, actorID, targetID uint, req *AdminUpdateUserRequest) error
}

type adminService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(userRepo repository.UserRepository, postRepo repository.PostRepository) AdminService {
	return &adminService{userRepo: userRepo, postRepo: postRepo}
}

// requireAdmin rejects actors that do not currently hold the admin flag
func (s *adminService) requireAdmin(ctx context.Context, actorID uint) error {
	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrForbidden
		}
		return err
	}
	if !actor.IsAdmin {
		return common.ErrForbidden
	}
	return nil
}

// Stats returns the moderation dashboard counters
func (s *adminService) Stats(ctx context.Context, actorID uint) (*AdminStats, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	banned, err := s.userRepo.CountBanned(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminStats{UsersCount: users, PostsCount: posts, BannedCount: banned}, nil
}

// ListUsers returns every user, newest first, with moderation fields
func (s *adminService) ListUsers(ctx context.Context, actorID uint) ([]*domain.AdminUserResponse, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.AdminUserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToAdminResponse()
	}
	return responses, nil
}

// Ban sets the banned flag on the target user
func (s *adminService) Ban(ctx context.Context, actorID, targetID uint) error {
	return s.setFlag(ctx, actorID, targetID, "is_banned", true)
}

// Unban clears the banned flag on the target user
func (s *adminService) Unban(ctx context.Context, actorID, targetID uint) error {
	return s.setFlag(ctx, actorID, targetID, "is_banned", false)
}

// GrantAdmin sets the admin flag on the target user
func (s *adminService) GrantAdmin(ctx context.Context, actorID, targetID uint) error {
	return s.setFlag(ctx, actorID, targetID, "is_admin", true)
}

// RevokeAdmin clears the admin flag on the target user
func (s *adminService) RevokeAdmin(ctx context.Context, actorID, targetID uint) error {
	return s.setFlag(ctx, actorID, targetID, "is_admin", false)
}

func (s *adminService) setFlag(ctx context.Context, actorID, targetID uint, column string, value bool) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	return s.userRepo.UpdateFields(ctx, targetID, map[string]interface{}{column: value})
}

// UpdateUser applies moderator edits to the target's name fields
func (s *adminService) UpdateUser(ctx context.Context, actorID, targetID uint, req *AdminUpdateUserRequest) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if req.FullName != nil && strings.TrimSpace(*req.FullName) != "" {
		fields["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.Username != nil && strings.TrimSpace(*req.Username) != "" {
		fields["username"] = strings.TrimSpace(*req.Username)
	}
	return s.userRepo.UpdateFields(ctx, targetID, fields)
}
