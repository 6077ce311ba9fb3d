package gormstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"postboard/internal/models"
)

type LikeRepository struct {
	DB *gorm.DB
}

// Toggle runs delete-if-exists-else-insert in one transaction. The insert
// ignores conflicts on the unique (user, target) index, so two racing
// requests never leave two rows behind.
func (r *LikeRepository) Toggle(ctx context.Context, userID string, target models.LikeTarget) (bool, error) {
	table, err := likeTable(target.Kind)
	if err != nil {
		return false, err
	}

	liked := false
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND "+table.column+" = ?", userID, target.ID).Delete(table.model())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		row, err := likeRow(userID, target)
		if err != nil {
			return err
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

func (r *LikeRepository) Count(ctx context.Context, target models.LikeTarget) (int64, error) {
	table, err := likeTable(target.Kind)
	if err != nil {
		return 0, err
	}
	var count int64
	err = r.DB.WithContext(ctx).
		Model(table.model()).
		Where(table.column+" = ?", target.ID).
		Count(&count).Error
	return count, err
}

func (r *LikeRepository) IsLiked(ctx context.Context, userID string, target models.LikeTarget) (bool, error) {
	table, err := likeTable(target.Kind)
	if err != nil {
		return false, err
	}
	var count int64
	err = r.DB.WithContext(ctx).
		Model(table.model()).
		Where("user_id = ? AND "+table.column+" = ?", userID, target.ID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}

func (r *LikeRepository) DeleteByTargets(ctx context.Context, kind models.TargetKind, targetIDs []string) error {
	if len(targetIDs) == 0 {
		return nil
	}
	table, err := likeTable(kind)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).
		Where(table.column+" IN ?", targetIDs).
		Delete(table.model()).Error
}

type likeTableDef struct {
	column string
	model  func() any
}

func likeTable(kind models.TargetKind) (likeTableDef, error) {
	switch kind {
	case models.TargetPost:
		return likeTableDef{column: "post_id", model: func() any { return &models.PostLike{} }}, nil
	case models.TargetComment:
		return likeTableDef{column: "comment_id", model: func() any { return &models.CommentLike{} }}, nil
	default:
		return likeTableDef{}, fmt.Errorf("invalid target kind %q", kind)
	}
}

func likeRow(userID string, target models.LikeTarget) (any, error) {
	switch target.Kind {
	case models.TargetPost:
		return &models.PostLike{ID: uuid.NewString(), UserID: userID, PostID: target.ID, CreatedAt: now()}, nil
	case models.TargetComment:
		return &models.CommentLike{ID: uuid.NewString(), UserID: userID, CommentID: target.ID, CreatedAt: now()}, nil
	default:
		return nil, fmt.Errorf("invalid target kind %q", target.Kind)
	}
}
