package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Wannasingh/wannasingh-blog/internal/model"
	"github.com/Wannasingh/wannasingh-blog/internal/repository"
)

var ErrPostNotFound = errors.New("post not found")

type PostInput struct {
	Title       string
	Image       string
	CategoryID  uint
	Description string
	Content     string
	StatusID    int
}

// PostPage is the public paginated listing.
type PostPage struct {
	TotalPosts   int64                 `json:"totalPosts"`
	TotalPages   int                   `json:"totalPages"`
	CurrentPage  int                   `json:"currentPage"`
	Limit        int                   `json:"limit"`
	NextPage     *int                  `json:"nextPage,omitempty"`
	PreviousPage *int                  `json:"previousPage,omitempty"`
	Posts        []*repository.PostRow `json:"posts"`
}

type PostService interface {
	List(ctx context.Context, category, keyword string, page, limit int) (*PostPage, error)
	GetPublished(ctx context.Context, id string) (*repository.PostRow, error)
	AdminList(ctx context.Context) ([]*repository.PostRow, error)
	AdminGet(ctx context.Context, id string) (*repository.PostRow, error)
	Create(ctx context.Context, ownerID string, in PostInput) (*model.Post, error)
	Update(ctx context.Context, id string, in PostInput) error
	Delete(ctx context.Context, id string) error
}

type postService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts}
}

func (s *postService) List(ctx context.Context, category, keyword string, page, limit int) (*PostPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 6
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	rows, total, err := s.posts.ListPublished(ctx, repository.PostFilter{Category: category, Keyword: keyword}, offset, limit)
	if err != nil {
		return nil, err
	}

	res := &PostPage{
		TotalPosts:  total,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		CurrentPage: page,
		Limit:       limit,
		Posts:       rows,
	}
	if int64(offset+limit) < total {
		next := page + 1
		res.NextPage = &next
	}
	if offset > 0 {
		prev := page - 1
		res.PreviousPage = &prev
	}
	return res, nil
}

func (s *postService) GetPublished(ctx context.Context, id string) (*repository.PostRow, error) {
	row, err := s.posts.Get(ctx, id, true)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	return row, err
}

func (s *postService) AdminList(ctx context.Context) ([]*repository.PostRow, error) {
	return s.posts.ListAll(ctx)
}

func (s *postService) AdminGet(ctx context.Context, id string) (*repository.PostRow, error) {
	row, err := s.posts.Get(ctx, id, false)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	return row, err
}

func (s *postService) Create(ctx context.Context, ownerID string, in PostInput) (*model.Post, error) {
	p := &model.Post{
		ID:          uuid.New().String(),
		UserID:      ownerID,
		Title:       in.Title,
		Image:       in.Image,
		CategoryID:  in.CategoryID,
		Description: in.Description,
		Content:     in.Content,
		StatusID:    in.StatusID,
		Date:        time.Now(),
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *postService) Update(ctx context.Context, id string, in PostInput) error {
	p := &model.Post{
		ID:          id,
		Title:       in.Title,
		Image:       in.Image,
		CategoryID:  in.CategoryID,
		Description: in.Description,
		Content:     in.Content,
		StatusID:    in.StatusID,
		Date:        time.Now(), // updates bump the feed date
	}
	n, err := s.posts.Update(ctx, p)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (s *postService) Delete(ctx context.Context, id string) error {
	n, err := s.posts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPostNotFound
	}
	return nil
}
