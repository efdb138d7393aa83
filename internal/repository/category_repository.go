package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Wannasingh/wannasingh-blog/internal/model"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]*model.Category, error)
	Get(ctx context.Context, id uint) (*model.Category, error)
	Create(ctx context.Context, c *model.Category) error
	Update(ctx context.Context, id uint, name string) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type categoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepository{db: db} }

func (r *categoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	var res []*model.Category
	err := r.db.WithContext(ctx).Order("id").Find(&res).Error
	return res, err
}

func (r *categoryRepository) Get(ctx context.Context, id uint) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepository) Update(ctx context.Context, id uint, name string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Update("name", name)
	return tx.RowsAffected, tx.Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Category{})
	return tx.RowsAffected, tx.Error
}
