package mongostore

import (
	"context"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"postboard/internal/models"
	"postboard/internal/repository"
)

type CommentRepository struct {
	Col *mongo.Collection
}

func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	_, err := r.Col.InsertOne(ctx, comment)
	return err
}

func (r *CommentRepository) Get(ctx context.Context, id string) (*models.Comment, error) {
	var c models.Comment
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// ListByPost returns the comments of a post oldest first.
func (r *CommentRepository) ListByPost(ctx context.Context, postID string, page repository.Page) ([]models.Comment, error) {
	filter := keysetFilter(bson.M{"post_id": postID}, page.After, false)
	opts := options.Find().
		SetSort(keysetSort(false)).
		SetLimit(int64(page.Limit))
	return r.find(ctx, filter, opts)
}

func (r *CommentRepository) AllByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	return r.find(ctx, bson.M{"post_id": postID}, options.Find().SetSort(keysetSort(false)))
}

func (r *CommentRepository) ListReplies(ctx context.Context, parentID string) ([]models.Comment, error) {
	return r.find(ctx, bson.M{"parent_id": parentID}, options.Find().SetSort(keysetSort(false)))
}

func (r *CommentRepository) ReplyIDs(ctx context.Context, parentIDs []string) ([]string, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	return r.ids(ctx, bson.M{"parent_id": bson.M{"$in": parentIDs}})
}

func (r *CommentRepository) IDsByPost(ctx context.Context, postID string) ([]string, error) {
	return r.ids(ctx, bson.M{"post_id": postID})
}

func (r *CommentRepository) CountByPost(ctx context.Context, postID string) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"post_id": postID})
}

func (r *CommentRepository) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.Col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}

func (r *CommentRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]models.Comment, error) {
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []models.Comment{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CommentRepository) ids(ctx context.Context, filter bson.M) ([]string, error) {
	cur, err := r.Col.Find(ctx, filter, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []idDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return lo.Map(docs, func(d idDoc, _ int) string { return d.ID }), nil
}
