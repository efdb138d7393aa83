package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Wannasingh/wannasingh-blog/internal/model"
)

// NotificationRow is the flat feed projection: notification plus actor and
// post fields resolved in one query.
type NotificationRow struct {
	ID           uint64    `json:"id"`
	Type         string    `json:"type"`
	UserName     string    `json:"user_name"`
	UserAvatar   string    `json:"user_avatar"`
	ArticleTitle string    `json:"article_title"`
	PostID       string    `json:"post_id"`
	Content      string    `json:"content,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	IsRead       bool      `json:"is_read"`
}

type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	// ListByPostIDs returns the newest notifications for the given posts,
	// capped at limit. Callers must short-circuit on an empty id set.
	ListByPostIDs(ctx context.Context, postIDs []string, limit int) ([]*NotificationRow, error)
	CountUnreadByPostIDs(ctx context.Context, postIDs []string) (int64, error)
	MarkRead(ctx context.Context, id uint64) error
	MarkAllReadByPostIDs(ctx context.Context, postIDs []string) error
}

type notificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepository) ListByPostIDs(ctx context.Context, postIDs []string, limit int) ([]*NotificationRow, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	var rows []*NotificationRow
	err := r.db.WithContext(ctx).
		Table("notifications").
		Select("notifications.id", "notifications.type",
			"users.name AS user_name", "users.profile_pic AS user_avatar",
			"posts.title AS article_title", "notifications.post_id",
			"notifications.content", "notifications.created_at", "notifications.is_read").
		Joins("JOIN users ON users.id = notifications.user_id").
		Joins("JOIN posts ON posts.id = notifications.post_id").
		Where("notifications.post_id IN ?", postIDs).
		Order("notifications.created_at DESC, notifications.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if rows == nil {
		rows = []*NotificationRow{}
	}
	return rows, err
}

func (r *notificationRepository) CountUnreadByPostIDs(ctx context.Context, postIDs []string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("post_id IN ? AND is_read = ?", postIDs, false).
		Count(&cnt).Error
	return cnt, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uint64) error {
	// idempotent: updating an already-read row simply affects zero rows
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *notificationRepository) MarkAllReadByPostIDs(ctx context.Context, postIDs []string) error {
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("post_id IN ? AND is_read = ?", postIDs, false).
		Update("is_read", true).Error
}
