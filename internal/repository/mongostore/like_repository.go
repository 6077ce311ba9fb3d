package mongostore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"postboard/internal/models"
)

// LikeRepository keeps post and comment likes in two collections, each with
// a unique (user_id, target) index created by bootstrap.EnsureIndexes.
type LikeRepository struct {
	PostLikes    *mongo.Collection
	CommentLikes *mongo.Collection
}

// Toggle is a conditional delete followed by an insert guarded by the unique
// index; a duplicate key means a concurrent request already liked the target.
func (r *LikeRepository) Toggle(ctx context.Context, userID string, target models.LikeTarget) (bool, error) {
	col, err := r.collection(target.Kind)
	if err != nil {
		return false, err
	}
	filter, err := likeFilter(userID, target)
	if err != nil {
		return false, err
	}

	res, err := col.DeleteMany(ctx, filter)
	if err != nil {
		return false, err
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	doc, err := likeDocument(userID, target)
	if err != nil {
		return false, err
	}
	if _, err := col.InsertOne(ctx, doc); err != nil {
		if isDuplicateKey(err) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (r *LikeRepository) Count(ctx context.Context, target models.LikeTarget) (int64, error) {
	col, err := r.collection(target.Kind)
	if err != nil {
		return 0, err
	}
	field, err := targetField(target.Kind)
	if err != nil {
		return 0, err
	}
	return col.CountDocuments(ctx, bson.M{field: target.ID})
}

func (r *LikeRepository) IsLiked(ctx context.Context, userID string, target models.LikeTarget) (bool, error) {
	col, err := r.collection(target.Kind)
	if err != nil {
		return false, err
	}
	filter, err := likeFilter(userID, target)
	if err != nil {
		return false, err
	}
	count, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}

func (r *LikeRepository) DeleteByTargets(ctx context.Context, kind models.TargetKind, targetIDs []string) error {
	if len(targetIDs) == 0 {
		return nil
	}
	col, err := r.collection(kind)
	if err != nil {
		return err
	}
	field, err := targetField(kind)
	if err != nil {
		return err
	}
	_, err = col.DeleteMany(ctx, bson.M{field: bson.M{"$in": targetIDs}})
	return err
}

func (r *LikeRepository) collection(kind models.TargetKind) (*mongo.Collection, error) {
	switch kind {
	case models.TargetPost:
		return r.PostLikes, nil
	case models.TargetComment:
		return r.CommentLikes, nil
	default:
		return nil, fmt.Errorf("invalid target kind %q", kind)
	}
}

func targetField(kind models.TargetKind) (string, error) {
	switch kind {
	case models.TargetPost:
		return "post_id", nil
	case models.TargetComment:
		return "comment_id", nil
	default:
		return "", fmt.Errorf("invalid target kind %q", kind)
	}
}

func likeFilter(userID string, target models.LikeTarget) (bson.M, error) {
	field, err := targetField(target.Kind)
	if err != nil {
		return nil, err
	}
	return bson.M{"user_id": userID, field: target.ID}, nil
}

func likeDocument(userID string, target models.LikeTarget) (any, error) {
	switch target.Kind {
	case models.TargetPost:
		return models.PostLike{ID: uuid.NewString(), UserID: userID, PostID: target.ID, CreatedAt: now()}, nil
	case models.TargetComment:
		return models.CommentLike{ID: uuid.NewString(), UserID: userID, CommentID: target.ID, CreatedAt: now()}, nil
	default:
		return nil, fmt.Errorf("invalid target kind %q", target.Kind)
	}
}
