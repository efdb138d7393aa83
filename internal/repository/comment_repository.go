package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Wannasingh/wannasingh-blog/internal/model"
)

// CommentRow is a comment joined with its author's public fields.
type CommentRow struct {
	ID          uint64    `json:"id"`
	PostID      string    `json:"post_id"`
	UserID      string    `json:"user_id"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Username    string    `json:"username"`
	ProfilePic  string    `json:"profile_pic"`
	Role        string    `json:"role"`
}

type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) error
	ListByPost(ctx context.Context, postID string) ([]*CommentRow, error)
}

type commentRepository struct{ db *gorm.DB }

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, c *model.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]*CommentRow, error) {
	var rows []*CommentRow
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id", "comments.post_id", "comments.user_id",
			"comments.comment_text", "comments.created_at",
			"users.name", "users.username", "users.profile_pic", "users.role").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at DESC, comments.id DESC").
		Scan(&rows).Error
	if rows == nil {
		rows = []*CommentRow{}
	}
	return rows, err
}

type LikeRepository interface {
	// Create is idempotent: liking an already-liked post affects no rows.
	// The bool reports whether a new row was inserted.
	Create(ctx context.Context, postID, userID string) (bool, error)
	Delete(ctx context.Context, postID, userID string) (int64, error)
	Exists(ctx context.Context, postID, userID string) (bool, error)
	Count(ctx context.Context, postID string) (int64, error)
}

type likeRepository struct{ db *gorm.DB }

func NewLikeRepository(db *gorm.DB) LikeRepository { return &likeRepository{db: db} }

func (r *likeRepository) Create(ctx context.Context, postID, userID string) (bool, error) {
	l := &model.Like{ID: uuid.New().String(), PostID: postID, UserID: userID}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(l)
	return tx.RowsAffected > 0, tx.Error
}

func (r *likeRepository) Delete(ctx context.Context, postID, userID string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.Like{})
	return tx.RowsAffected, tx.Error
}

func (r *likeRepository) Exists(ctx context.Context, postID, userID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *likeRepository) Count(ctx context.Context, postID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&cnt).Error
	return cnt, err
}
