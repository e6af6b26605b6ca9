package service

import (
	"context"

	"github.com/wavely/wavely-backend/internal/domain"
	"github.com/wavely/wavely-backend/internal/repository"
)

// notificationLimit is the fixed size of the notification list
const notificationLimit = 50

// NotificationService notification inbox business logic
type NotificationService interface {
	List(ctx context.Context, userID uint) ([]*domain.NotificationResponse, error)
	MarkRead(ctx context.Context, notificationID uint) error
	MarkAllRead(ctx context.Context, userID uint) error
	UnreadCount(ctx context.Context, userID uint) (int64, error)
}

type notificationService struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifRepo repository.NotificationRepository, userRepo repository.UserRepository) NotificationService {
	return &notificationService{notifRepo: notifRepo, userRepo: userRepo}
}

// List returns the user's notifications, newest first, each joined with the
// triggering actor's summary
func (s *notificationService) List(ctx context.Context, userID uint) ([]*domain.NotificationResponse, error) {
	notifications, err := s.notifRepo.ListByUser(ctx, userID, notificationLimit)
	if err != nil {
		return nil, err
	}

	actorIDs := make([]uint, 0, len(notifications))
	seen := make(map[uint]bool, len(notifications))
	for _, n := range notifications {
		if !seen[n.RelatedUserID] {
			seen[n.RelatedUserID] = true
			actorIDs = append(actorIDs, n.RelatedUserID)
		}
	}

	actors, err := s.userRepo.FindSummariesByIDs(ctx, actorIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = &domain.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Content:   n.Content,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
			User:      actors[n.RelatedUserID],
		}
	}
	return responses, nil
}

// MarkRead marks a single notification as read; repeating it is a no-op
func (s *notificationService) MarkRead(ctx context.Context, notificationID uint) error {
	return s.notifRepo.MarkRead(ctx, notificationID)
}

// MarkAllRead marks every unread notification of the user as read
func (s *notificationService) MarkAllRead(ctx context.Context, userID uint) error {
	return s.notifRepo.MarkAllRead(ctx, userID)
}

// UnreadCount returns the number of unread notifications
func (s *notificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}
