package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Wannasingh/wannasingh-blog/internal/model"
	"github.com/Wannasingh/wannasingh-blog/internal/repository"
)

func seedPost(t *testing.T, db *gorm.DB, ownerID, title string) *model.Post {
	t.Helper()
	p := &model.Post{
		ID:         uuid.New().String(),
		UserID:     ownerID,
		Title:      title,
		CategoryID: seedCategory(t, db).ID,
		StatusID:   model.StatusPublished,
		Date:       time.Now(),
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedCategory(t *testing.T, db *gorm.DB) *model.Category {
	t.Helper()
	c := &model.Category{Name: "general-" + uuid.New().String()[:8]}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedNotification(t *testing.T, db *gorm.DB, actorID, postID, typ, content string) *model.Notification {
	t.Helper()
	n := &model.Notification{Type: typ, UserID: actorID, PostID: postID, Content: content}
	require.NoError(t, db.Create(n).Error)
	return n
}

func newNotificationService(db *gorm.DB) NotificationService {
	return NewNotificationService(
		repository.NewNotificationRepository(db),
		repository.NewPostRepository(db),
		nil,
	)
}

func TestNotificationsScopedToOwnedPosts(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	admin := seedUser(t, db, "admin", model.RoleAdmin)
	other := seedUser(t, db, "other", model.RoleAdmin)
	reader := seedUser(t, db, "reader", model.RoleUser)

	mine := seedPost(t, db, admin.ID, "My Post")
	theirs := seedPost(t, db, other.ID, "Their Post")

	seedNotification(t, db, reader.ID, mine.ID, model.NotificationComment, "nice read")
	seedNotification(t, db, reader.ID, theirs.ID, model.NotificationLike, "")

	rows, err := svc.List(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, model.NotificationComment, rows[0].Type)
	require.Equal(t, "reader", rows[0].UserName)
	require.Equal(t, "My Post", rows[0].ArticleTitle)
	require.Equal(t, "nice read", rows[0].Content)
	require.False(t, rows[0].IsRead)

	require.EqualValues(t, 1, svc.CountUnread(ctx, admin.ID))
	require.EqualValues(t, 1, svc.CountUnread(ctx, other.ID))
}

func TestNotificationsEmptyForAdminWithoutPosts(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	admin := seedUser(t, db, "admin", model.RoleAdmin)

	rows, err := svc.List(ctx, admin.ID)
	require.NoError(t, err)
	require.Empty(t, rows)
	require.Zero(t, svc.CountUnread(ctx, admin.ID))

	// mark-all against no posts is a no-op success
	require.NoError(t, svc.MarkAllRead(ctx, admin.ID))
}

func TestMarkNotificationRead(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	admin := seedUser(t, db, "admin", model.RoleAdmin)
	reader := seedUser(t, db, "reader", model.RoleUser)
	p := seedPost(t, db, admin.ID, "A Post")
	n := seedNotification(t, db, reader.ID, p.ID, model.NotificationLike, "")

	require.NoError(t, svc.MarkRead(ctx, admin.ID, n.ID))
	require.Zero(t, svc.CountUnread(ctx, admin.ID))

	// idempotent: marking a read row again succeeds silently
	require.NoError(t, svc.MarkRead(ctx, admin.ID, n.ID))
	require.Zero(t, svc.CountUnread(ctx, admin.ID))
}

func TestMarkAllNotificationsRead(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	admin := seedUser(t, db, "admin", model.RoleAdmin)
	reader := seedUser(t, db, "reader", model.RoleUser)
	p := seedPost(t, db, admin.ID, "A Post")
	for i := 0; i < 3; i++ {
		seedNotification(t, db, reader.ID, p.ID, model.NotificationComment, "again")
	}

	require.EqualValues(t, 3, svc.CountUnread(ctx, admin.ID))
	require.NoError(t, svc.MarkAllRead(ctx, admin.ID))
	require.Zero(t, svc.CountUnread(ctx, admin.ID))
	require.NoError(t, svc.MarkAllRead(ctx, admin.ID))
	require.Zero(t, svc.CountUnread(ctx, admin.ID))
}

func TestNotificationFeedCap(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	ctx := context.Background()

	admin := seedUser(t, db, "admin", model.RoleAdmin)
	reader := seedUser(t, db, "reader", model.RoleUser)
	p := seedPost(t, db, admin.ID, "Busy Post")
	for i := 0; i < 60; i++ {
		seedNotification(t, db, reader.ID, p.ID, model.NotificationLike, "")
	}

	rows, err := svc.List(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, rows, 50)
}
