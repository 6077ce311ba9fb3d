package gormstore

import (
	"context"

	"gorm.io/gorm"

	"postboard/internal/models"
	"postboard/internal/repository"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.DB.WithContext(ctx).Create(post).Error
}

func (r *PostRepository) Get(ctx context.Context, id string) (*models.Post, error) {
	var p models.Post
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *PostRepository) List(ctx context.Context, page repository.Page) ([]models.Post, error) {
	items := []models.Post{}
	q := keyset(r.DB.WithContext(ctx).Model(&models.Post{}), page.After, true)
	if err := q.Limit(page.Limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	res := r.DB.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"image":      post.Image,
			"caption":    post.Caption,
			"updated_at": post.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
