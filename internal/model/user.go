package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the local profile row; auth tokens reference it by id.
type User struct {
	ID         string `gorm:"primaryKey;type:varchar(36)"`
	Username   string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name       string `gorm:"type:varchar(100);not null"`
	Email      string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password   string `gorm:"type:varchar(100);not null"` // bcrypt hash
	Role       string `gorm:"type:varchar(16);index;not null;default:user"`
	ProfilePic string `gorm:"type:text"`
	Bio        string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (User) TableName() string { return "users" }
