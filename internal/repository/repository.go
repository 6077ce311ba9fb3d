// Package repository declares the persistence contracts shared by the
// MongoDB (mongostore) and SQL (gormstore) backends.
package repository

import (
	"context"
	"errors"

	"postboard/internal/cursor"
	"postboard/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Page is a keyset page request. Posts are listed newest first, comments
// oldest first; After is the last item of the previous page.
type Page struct {
	Limit int
	After *cursor.Cursor
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	Get(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context, page Page) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	Get(ctx context.Context, id string) (*models.Comment, error)
	ListByPost(ctx context.Context, postID string, page Page) ([]models.Comment, error)
	// AllByPost returns every comment of a post ordered oldest first.
	AllByPost(ctx context.Context, postID string) ([]models.Comment, error)
	ListReplies(ctx context.Context, parentID string) ([]models.Comment, error)
	// ReplyIDs returns the ids of the direct children of any of parentIDs.
	ReplyIDs(ctx context.Context, parentIDs []string) ([]string, error)
	IDsByPost(ctx context.Context, postID string) ([]string, error)
	CountByPost(ctx context.Context, postID string) (int64, error)
	DeleteMany(ctx context.Context, ids []string) error
}

type LikeRepository interface {
	// Toggle deletes every like of userID on target, or inserts one when
	// there was none. It reports whether the target is liked afterwards.
	Toggle(ctx context.Context, userID string, target models.LikeTarget) (bool, error)
	Count(ctx context.Context, target models.LikeTarget) (int64, error)
	IsLiked(ctx context.Context, userID string, target models.LikeTarget) (bool, error)
	DeleteByTargets(ctx context.Context, kind models.TargetKind, targetIDs []string) error
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Get(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Store bundles the repositories of one backend.
type Store struct {
	Posts    PostRepository
	Comments CommentRepository
	Likes    LikeRepository
	Users    UserRepository

	// Migrate creates indexes or tables. Close releases the connection.
	Migrate func(ctx context.Context) error
	Close   func(ctx context.Context) error

	// Tx runs fn on a store whose writes commit or roll back together.
	// Nil means the backend runs fn directly.
	Tx func(ctx context.Context, fn func(tx *Store) error) error
}

// InTx runs fn inside s.Tx when the backend has one.
func (s *Store) InTx(ctx context.Context, fn func(tx *Store) error) error {
	if s.Tx == nil {
		return fn(s)
	}
	return s.Tx(ctx, fn)
}
