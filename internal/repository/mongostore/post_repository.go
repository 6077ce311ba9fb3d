package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"postboard/internal/models"
	"postboard/internal/repository"
)

type PostRepository struct {
	Col *mongo.Collection
}

func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	_, err := r.Col.InsertOne(ctx, post)
	return err
}

func (r *PostRepository) Get(ctx context.Context, id string) (*models.Post, error) {
	var p models.Post
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// List returns posts newest first.
func (r *PostRepository) List(ctx context.Context, page repository.Page) ([]models.Post, error) {
	filter := keysetFilter(bson.M{}, page.After, true)
	opts := options.Find().
		SetSort(keysetSort(true)).
		SetLimit(int64(page.Limit))

	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []models.Post{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": post.ID},
		bson.M{"$set": bson.M{
			"image":      post.Image,
			"caption":    post.Caption,
			"updated_at": post.UpdatedAt,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
