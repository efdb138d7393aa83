package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Wannasingh/wannasingh-blog/internal/model"
	"github.com/Wannasingh/wannasingh-blog/internal/repository"
)

var (
	ErrEmptyComment   = errors.New("comment content cannot be empty")
	ErrCommentTooLong = errors.New("comment content exceeds the maximum length of 500 characters")
	ErrLikeNotFound   = errors.New("like not found")
)

const maxCommentLength = 500

type CommentService interface {
	ListByPost(ctx context.Context, postID string) ([]*repository.CommentRow, error)
	Create(ctx context.Context, postID, userID, text string) (*model.Comment, error)
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	notifier *Notifier
}

func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository, notifier *Notifier) CommentService {
	return &commentService{comments: comments, posts: posts, notifier: notifier}
}

func (s *commentService) ListByPost(ctx context.Context, postID string) ([]*repository.CommentRow, error) {
	return s.comments.ListByPost(ctx, postID)
}

func (s *commentService) Create(ctx context.Context, postID, userID, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}
	if len(text) > maxCommentLength {
		return nil, ErrCommentTooLong
	}
	ok, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPostNotFound
	}

	c := &model.Comment{PostID: postID, UserID: userID, CommentText: text}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	s.notifier.NotifyComment(userID, postID, text)
	return c, nil
}

type LikeService interface {
	Count(ctx context.Context, postID string) (int64, error)
	// Like is idempotent; only a first-time like produces a notification.
	Like(ctx context.Context, postID, userID string) error
	Unlike(ctx context.Context, postID, userID string) error
}

type likeService struct {
	likes    repository.LikeRepository
	posts    repository.PostRepository
	notifier *Notifier
}

func NewLikeService(likes repository.LikeRepository, posts repository.PostRepository, notifier *Notifier) LikeService {
	return &likeService{likes: likes, posts: posts, notifier: notifier}
}

func (s *likeService) Count(ctx context.Context, postID string) (int64, error) {
	return s.likes.Count(ctx, postID)
}

func (s *likeService) Like(ctx context.Context, postID, userID string) error {
	ok, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPostNotFound
	}
	created, err := s.likes.Create(ctx, postID, userID)
	if err != nil {
		return err
	}
	if created {
		s.notifier.NotifyLike(userID, postID)
	}
	return nil
}

func (s *likeService) Unlike(ctx context.Context, postID, userID string) error {
	n, err := s.likes.Delete(ctx, postID, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrLikeNotFound
	}
	return nil
}
