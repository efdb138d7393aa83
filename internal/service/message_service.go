package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Wannasingh/wannasingh-blog/internal/model"
	"github.com/Wannasingh/wannasingh-blog/internal/repository"
	"github.com/Wannasingh/wannasingh-blog/pkg/logger"
)

var (
	ErrEmptyMessage = errors.New("message body cannot be empty")
	ErrMessageSelf  = errors.New("cannot message yourself")
)

// UserSummary is the counterpart projection used by conversation summaries.
type UserSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ProfilePic string `json:"profile_pic"`
}

// ConversationSummary is one row of the conversation list: the counterpart,
// the most recent message and the requester's unread count for that pair.
type ConversationSummary struct {
	User            UserSummary `json:"user"`
	LastMessage     string      `json:"lastMessage"`
	LastMessageTime time.Time   `json:"lastMessageTime"`
	UnreadCount     int         `json:"unreadCount"`
}

type MessageService interface {
	Send(ctx context.Context, senderID, receiverID, body string) (*model.Message, error)
	// ListWith returns the full thread with the counterpart in chronological
	// order. Fetching marks the counterpart's unread messages as read; the
	// returned rows reflect the post-transition state.
	ListWith(ctx context.Context, userID, otherID string) ([]*model.Message, error)
	Conversations(ctx context.Context, userID string) ([]*ConversationSummary, error)
	// CountUnread never fails: badge semantics, 0 on store error.
	CountUnread(ctx context.Context, userID string) int64
}

type messageService struct {
	messages repository.MessageRepository
	users    repository.UserRepository
	badges   *BadgeCache
}

func NewMessageService(messages repository.MessageRepository, users repository.UserRepository, badges *BadgeCache) MessageService {
	return &messageService{messages: messages, users: users, badges: badges}
}

func (s *messageService) Send(ctx context.Context, senderID, receiverID, body string) (*model.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}
	if senderID == receiverID {
		return nil, ErrMessageSelf
	}
	m := &model.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    body,
		IsRead:     false,
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	s.badges.Invalidate(ctx, "badge:msg:"+receiverID)
	return m, nil
}

func (s *messageService) ListWith(ctx context.Context, userID, otherID string) ([]*model.Message, error) {
	// the read transition runs first so the listing below already carries
	// the post-transition state
	if n, err := s.messages.MarkRead(ctx, userID, otherID); err != nil {
		logger.Warn("mark messages read failed", zap.String("user", userID), zap.Error(err))
	} else if n > 0 {
		s.badges.Invalidate(ctx, "badge:msg:"+userID)
	}
	return s.messages.ListBetween(ctx, userID, otherID)
}

func (s *messageService) Conversations(ctx context.Context, userID string) ([]*ConversationSummary, error) {
	msgs, err := s.messages.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// newest-first scan: the first message seen per counterpart is the most
	// recent one, and counterpart order follows recency of activity
	order := make([]string, 0)
	byOther := make(map[string]*ConversationSummary)
	for _, m := range msgs {
		otherID := m.SenderID
		if otherID == userID {
			otherID = m.ReceiverID
		}
		conv, ok := byOther[otherID]
		if !ok {
			conv = &ConversationSummary{
				User:            UserSummary{ID: otherID},
				LastMessage:     m.Message,
				LastMessageTime: m.CreatedAt,
			}
			byOther[otherID] = conv
			order = append(order, otherID)
		}
		if !m.IsRead && m.ReceiverID == userID {
			conv.UnreadCount++
		}
	}

	users, err := s.users.ListByIDs(ctx, order)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if conv, ok := byOther[u.ID]; ok {
			conv.User.Name = u.Name
			conv.User.ProfilePic = u.ProfilePic
		}
	}

	res := make([]*ConversationSummary, 0, len(order))
	for _, id := range order {
		res = append(res, byOther[id])
	}
	return res, nil
}

func (s *messageService) CountUnread(ctx context.Context, userID string) int64 {
	key := "badge:msg:" + userID
	if n, ok := s.badges.Get(ctx, key); ok {
		return n
	}
	n, err := s.messages.CountUnread(ctx, userID)
	if err != nil {
		logger.Warn("unread message count failed", zap.String("user", userID), zap.Error(err))
		return 0
	}
	s.badges.Set(ctx, key, n)
	return n
}
