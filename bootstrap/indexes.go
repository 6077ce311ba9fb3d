package bootstrap

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type CollectionIndexes struct {
	Collection string
	Models     []mongo.IndexModel
}

// Indexes lists every index the API relies on. The unique like indexes are
// what makes a like toggle safe under concurrent requests.
func Indexes() []CollectionIndexes {
	return []CollectionIndexes{
		{"post_likes", []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "post_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_user_post"),
			},
			{Keys: bson.D{{Key: "post_id", Value: 1}}, Options: options.Index().SetName("post_id")},
		}},
		{"comment_likes", []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "comment_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_user_comment"),
			},
			{Keys: bson.D{{Key: "comment_id", Value: 1}}, Options: options.Index().SetName("comment_id")},
		}},
		{"post_comments", []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "post_id", Value: 1}, {Key: "created_at", Value: 1}, {Key: "_id", Value: 1}},
				Options: options.Index().SetName("post_created"),
			},
			{Keys: bson.D{{Key: "parent_id", Value: 1}}, Options: options.Index().SetName("parent_id")},
		}},
		{"posts", []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
				Options: options.Index().SetName("created_desc"),
			},
		}},
		{"users", []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_username"),
			},
		}},
	}
}

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, ci := range Indexes() {
		if _, err := db.Collection(ci.Collection).Indexes().CreateMany(ctx, ci.Models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", ci.Collection, err)
		}
	}
	return nil
}
