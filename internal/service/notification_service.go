package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Wannasingh/wannasingh-blog/internal/repository"
	"github.com/Wannasingh/wannasingh-blog/pkg/logger"
)

const notificationFeedLimit = 50

type NotificationService interface {
	// List returns the newest notifications on posts owned by the admin,
	// capped at 50. An admin with no posts gets an empty list.
	List(ctx context.Context, adminID string) ([]*repository.NotificationRow, error)
	// CountUnread never fails: badge semantics, 0 on store error.
	CountUnread(ctx context.Context, adminID string) int64
	MarkRead(ctx context.Context, adminID string, id uint64) error
	MarkAllRead(ctx context.Context, adminID string) error
}

type notificationService struct {
	notifications repository.NotificationRepository
	posts         repository.PostRepository
	badges        *BadgeCache
}

func NewNotificationService(notifications repository.NotificationRepository, posts repository.PostRepository, badges *BadgeCache) NotificationService {
	return &notificationService{notifications: notifications, posts: posts, badges: badges}
}

func (s *notificationService) List(ctx context.Context, adminID string) ([]*repository.NotificationRow, error) {
	postIDs, err := s.posts.ListIDsByOwner(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if len(postIDs) == 0 {
		return []*repository.NotificationRow{}, nil
	}
	return s.notifications.ListByPostIDs(ctx, postIDs, notificationFeedLimit)
}

func (s *notificationService) CountUnread(ctx context.Context, adminID string) int64 {
	key := "badge:notif:" + adminID
	if n, ok := s.badges.Get(ctx, key); ok {
		return n
	}
	postIDs, err := s.posts.ListIDsByOwner(ctx, adminID)
	if err != nil {
		logger.Warn("resolve owned posts failed", zap.String("admin", adminID), zap.Error(err))
		return 0
	}
	if len(postIDs) == 0 {
		return 0
	}
	n, err := s.notifications.CountUnreadByPostIDs(ctx, postIDs)
	if err != nil {
		logger.Warn("unread notification count failed", zap.String("admin", adminID), zap.Error(err))
		return 0
	}
	s.badges.Set(ctx, key, n)
	return n
}

func (s *notificationService) MarkRead(ctx context.Context, adminID string, id uint64) error {
	if err := s.notifications.MarkRead(ctx, id); err != nil {
		return err
	}
	s.badges.Invalidate(ctx, "badge:notif:"+adminID)
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, adminID string) error {
	postIDs, err := s.posts.ListIDsByOwner(ctx, adminID)
	if err != nil {
		return err
	}
	if len(postIDs) == 0 {
		return nil
	}
	if err := s.notifications.MarkAllReadByPostIDs(ctx, postIDs); err != nil {
		return err
	}
	s.badges.Invalidate(ctx, "badge:notif:"+adminID)
	return nil
}
