package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Wannasingh/wannasingh-blog/internal/model"
	"github.com/Wannasingh/wannasingh-blog/internal/repository"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrEmptyCategory    = errors.New("category name cannot be empty")
)

type CategoryService interface {
	List(ctx context.Context) ([]*model.Category, error)
	Get(ctx context.Context, id uint) (*model.Category, error)
	Create(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) List(ctx context.Context) ([]*model.Category, error) {
	return s.categories.List(ctx)
}

func (s *categoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	c, err := s.categories.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCategoryNotFound
	}
	return c, err
}

func (s *categoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCategory
	}
	c := &model.Category{Name: name}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCategory
	}
	n, err := s.categories.Update(ctx, id, name)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	n, err := s.categories.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
