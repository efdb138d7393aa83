package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Wannasingh/wannasingh-blog/internal/model"
)

type MessageRepository interface {
	Create(ctx context.Context, m *model.Message) error
	// ListBetween returns both directions of the pair in chronological order.
	ListBetween(ctx context.Context, userA, userB string) ([]*model.Message, error)
	// ListByUser returns every message the user sent or received, newest first.
	ListByUser(ctx context.Context, userID string) ([]*model.Message, error)
	// MarkRead flips unread messages from sender to receiver and reports how
	// many rows changed. Already-read rows are untouched.
	MarkRead(ctx context.Context, receiverID, senderID string) (int64, error)
	CountUnread(ctx context.Context, receiverID string) (int64, error)
}

type messageRepository struct{ db *gorm.DB }

func NewMessageRepository(db *gorm.DB) MessageRepository { return &messageRepository{db: db} }

func (r *messageRepository) Create(ctx context.Context, m *model.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *messageRepository) ListBetween(ctx context.Context, userA, userB string) ([]*model.Message, error) {
	var res []*model.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (r *messageRepository) ListByUser(ctx context.Context, userID string) ([]*model.Message, error) {
	var res []*model.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (r *messageRepository) MarkRead(ctx context.Context, receiverID, senderID string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND is_read = ?", receiverID, senderID, false).
		Update("is_read", true)
	return tx.RowsAffected, tx.Error
}

func (r *messageRepository) CountUnread(ctx context.Context, receiverID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Count(&cnt).Error
	return cnt, err
}
