package model

import "time"

// Post statuses; only published posts are visible on the public surface.
const (
	StatusDraft     = 1
	StatusPublished = 2
)

// Status is the lookup table behind posts.status_id.
type Status struct {
	ID     int    `gorm:"primaryKey"`
	Status string `gorm:"type:varchar(32);not null"`
}

func (Status) TableName() string { return "statuses" }

type Post struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	UserID      string    `gorm:"type:varchar(36);index:idx_post_owner;not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Image       string    `gorm:"type:text"` // public URL from the blob store
	CategoryID  uint      `gorm:"index;not null"`
	Description string    `gorm:"type:text"`
	Content     string    `gorm:"type:text"`
	StatusID    int       `gorm:"index;not null;default:1"`
	Date        time.Time `gorm:"index"` // feed ordering key, bumped on update
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Post) TableName() string { return "posts" }
