package model

import "time"

type Comment struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	PostID      string `gorm:"type:varchar(36);index:idx_comment_post;not null"`
	UserID      string `gorm:"type:varchar(36);not null"`
	CommentText string `gorm:"type:varchar(500);not null"`
	CreatedAt   time.Time
}

func (Comment) TableName() string { return "comments" }

// Like rows are unique per (post, user); inserts use ON CONFLICT DO NOTHING
// so liking twice is a no-op.
type Like struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	PostID    string `gorm:"type:varchar(36);index:idx_like_post;index:idx_like_pair,unique;not null"`
	UserID    string `gorm:"type:varchar(36);not null;index:idx_like_pair,unique"`
	CreatedAt time.Time
}

func (Like) TableName() string { return "likes" }
