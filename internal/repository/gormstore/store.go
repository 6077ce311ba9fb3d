// Package gormstore implements the repository contracts on a SQL database
// through gorm. PostgreSQL is used in production, SQLite in tests.
package gormstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"postboard/internal/cursor"
	"postboard/internal/models"
	"postboard/internal/repository"
)

// Models is the AutoMigrate set.
func Models() []any {
	return []any{
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.PostLike{},
		&models.CommentLike{},
	}
}

func New(db *gorm.DB) *repository.Store {
	return &repository.Store{
		Posts:    &PostRepository{DB: db},
		Comments: &CommentRepository{DB: db},
		Likes:    &LikeRepository{DB: db},
		Users:    &UserRepository{DB: db},
		Migrate: func(ctx context.Context) error {
			return db.WithContext(ctx).AutoMigrate(Models()...)
		},
		Tx: func(ctx context.Context, fn func(tx *repository.Store) error) error {
			return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				return fn(New(tx))
			})
		},
		Close: func(_ context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}

// keyset applies the (created_at, id) page window to q.
func keyset(q *gorm.DB, c *cursor.Cursor, desc bool) *gorm.DB {
	order := "created_at ASC, id ASC"
	if desc {
		order = "created_at DESC, id DESC"
	}
	q = q.Order(order)
	if c == nil {
		return q
	}
	t := c.Time()
	if desc {
		return q.Where("created_at < ? OR (created_at = ? AND id < ?)", t, t, c.ID)
	}
	return q.Where("created_at > ? OR (created_at = ? AND id > ?)", t, t, c.ID)
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
