package model

import "time"

const (
	NotificationComment = "comment"
	NotificationLike    = "like"
)

// Notification records a comment/like event on a post. UserID is the actor,
// not the recipient; the feed is scoped by post ownership.
type Notification struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Type      string `gorm:"type:varchar(16);not null"`
	UserID    string `gorm:"type:varchar(36);not null"`
	PostID    string `gorm:"type:varchar(36);index:idx_notif_post_unread;not null"`
	Content   string `gorm:"type:varchar(500)"` // comment text, empty for likes
	IsRead    bool   `gorm:"index:idx_notif_post_unread;not null;default:false"`
	CreatedAt time.Time `gorm:"index"`
}

func (Notification) TableName() string { return "notifications" }
