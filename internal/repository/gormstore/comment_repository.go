package gormstore

import (
	"context"

	"gorm.io/gorm"

	"postboard/internal/models"
	"postboard/internal/repository"
)

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.DB.WithContext(ctx).Create(comment).Error
}

func (r *CommentRepository) Get(ctx context.Context, id string) (*models.Comment, error) {
	var c models.Comment
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID string, page repository.Page) ([]models.Comment, error) {
	items := []models.Comment{}
	q := r.DB.WithContext(ctx).Model(&models.Comment{}).Where("post_id = ?", postID)
	q = keyset(q, page.After, false)
	if err := q.Limit(page.Limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CommentRepository) AllByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	items := []models.Comment{}
	q := keyset(r.DB.WithContext(ctx).Where("post_id = ?", postID), nil, false)
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CommentRepository) ListReplies(ctx context.Context, parentID string) ([]models.Comment, error) {
	items := []models.Comment{}
	q := keyset(r.DB.WithContext(ctx).Where("parent_id = ?", parentID), nil, false)
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CommentRepository) ReplyIDs(ctx context.Context, parentIDs []string) ([]string, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var ids []string
	err := r.DB.WithContext(ctx).
		Model(&models.Comment{}).
		Where("parent_id IN ?", parentIDs).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *CommentRepository) IDsByPost(ctx context.Context, postID string) ([]string, error) {
	var ids []string
	err := r.DB.WithContext(ctx).
		Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *CommentRepository) CountByPost(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (r *CommentRepository) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Comment{}).Error
}
