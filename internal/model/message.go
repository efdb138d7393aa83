package model

import "time"

// Message is a directed message between two users. The auto-increment id
// doubles as the tie-break for messages created within the same instant.
type Message struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID   string `gorm:"type:varchar(36);index:idx_msg_sender;not null" json:"sender_id"`
	ReceiverID string `gorm:"type:varchar(36);index:idx_msg_receiver_unread;not null" json:"receiver_id"`
	Message    string `gorm:"type:text;not null" json:"message"`
	IsRead     bool   `gorm:"index:idx_msg_receiver_unread;not null;default:false" json:"is_read"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

func (Message) TableName() string { return "messages" }
