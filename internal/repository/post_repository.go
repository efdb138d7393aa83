package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Wannasingh/wannasingh-blog/internal/model"
)

// PostRow is a post joined with its category and status names.
type PostRow struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	CategoryID  uint      `json:"category_id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	StatusID    int       `json:"status_id"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}

// PostFilter narrows the public post listing.
type PostFilter struct {
	Category string // matched against the category name, substring
	Keyword  string // matched against title/description/content
}

type PostRepository interface {
	Create(ctx context.Context, p *model.Post) error
	// ListPublished returns published posts newest first with the total count
	// before paging.
	ListPublished(ctx context.Context, f PostFilter, offset, limit int) ([]*PostRow, int64, error)
	ListAll(ctx context.Context) ([]*PostRow, error)
	Get(ctx context.Context, id string, publishedOnly bool) (*PostRow, error)
	Update(ctx context.Context, p *model.Post) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	ListIDsByOwner(ctx context.Context, userID string) ([]string, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type postRepository struct{ db *gorm.DB }

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, p *model.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *postRepository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("posts").
		Select("posts.id", "posts.user_id", "posts.title", "posts.image",
			"posts.category_id", "categories.name AS category",
			"posts.description", "posts.content",
			"posts.status_id", "statuses.status AS status", "posts.date").
		Joins("JOIN categories ON categories.id = posts.category_id").
		Joins("JOIN statuses ON statuses.id = posts.status_id")
}

func (r *postRepository) ListPublished(ctx context.Context, f PostFilter, offset, limit int) ([]*PostRow, int64, error) {
	q := r.base(ctx).Where("posts.status_id = ?", model.StatusPublished)
	if f.Category != "" {
		q = q.Where("categories.name LIKE ?", "%"+f.Category+"%")
	}
	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		q = q.Where("posts.title LIKE ? OR posts.description LIKE ? OR posts.content LIKE ?", kw, kw, kw)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []*PostRow
	err := q.Order("posts.date DESC").Offset(offset).Limit(limit).Scan(&rows).Error
	if rows == nil {
		rows = []*PostRow{}
	}
	return rows, total, err
}

func (r *postRepository) ListAll(ctx context.Context) ([]*PostRow, error) {
	var rows []*PostRow
	err := r.base(ctx).Order("posts.date DESC").Scan(&rows).Error
	if rows == nil {
		rows = []*PostRow{}
	}
	return rows, err
}

func (r *postRepository) Get(ctx context.Context, id string, publishedOnly bool) (*PostRow, error) {
	q := r.base(ctx).Where("posts.id = ?", id)
	if publishedOnly {
		q = q.Where("posts.status_id = ?", model.StatusPublished)
	}
	var row PostRow
	tx := q.Limit(1).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (r *postRepository) Update(ctx context.Context, p *model.Post) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"title":       p.Title,
			"image":       p.Image,
			"category_id": p.CategoryID,
			"description": p.Description,
			"content":     p.Content,
			"status_id":   p.StatusID,
			"date":        p.Date,
		})
	return tx.RowsAffected, tx.Error
}

func (r *postRepository) Delete(ctx context.Context, id string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{})
	return tx.RowsAffected, tx.Error
}

func (r *postRepository) ListIDsByOwner(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("user_id = ?", userID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *postRepository) Exists(ctx context.Context, id string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
