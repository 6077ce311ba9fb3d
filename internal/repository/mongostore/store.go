// Package mongostore implements the repository contracts on MongoDB.
package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"postboard/bootstrap"
	"postboard/internal/cursor"
	"postboard/internal/repository"
)

const (
	ColPosts        = "posts"
	ColComments     = "post_comments"
	ColPostLikes    = "post_likes"
	ColCommentLikes = "comment_likes"
	ColUsers        = "users"
)

// New wires the MongoDB repositories of db. The client is disconnected by
// Store.Close.
func New(client *mongo.Client, db *mongo.Database) *repository.Store {
	return &repository.Store{
		Posts:    &PostRepository{Col: db.Collection(ColPosts)},
		Comments: &CommentRepository{Col: db.Collection(ColComments)},
		Likes: &LikeRepository{
			PostLikes:    db.Collection(ColPostLikes),
			CommentLikes: db.Collection(ColCommentLikes),
		},
		Users: &UserRepository{Col: db.Collection(ColUsers)},
		Migrate: func(ctx context.Context) error {
			return bootstrap.EnsureIndexes(ctx, db)
		},
		Close: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	}
}

// isDuplicateKey reports a unique index violation (E11000).
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
		return true
	}
	return mongo.IsDuplicateKeyError(err)
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}

// keysetFilter narrows filter to the items strictly after c in the
// (created_at, _id) order; desc selects the direction of that order.
func keysetFilter(filter bson.M, c *cursor.Cursor, desc bool) bson.M {
	if c == nil {
		return filter
	}
	op := "$gt"
	if desc {
		op = "$lt"
	}
	t := c.Time()
	filter["$or"] = []bson.M{
		{"created_at": bson.M{op: t}},
		{"created_at": t, "_id": bson.M{op: c.ID}},
	}
	return filter
}

func keysetSort(desc bool) bson.D {
	dir := 1
	if desc {
		dir = -1
	}
	return bson.D{{Key: "created_at", Value: dir}, {Key: "_id", Value: dir}}
}

type idDoc struct {
	ID string `bson:"_id"`
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
