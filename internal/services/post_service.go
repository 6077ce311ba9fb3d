package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"postboard/dto"
	"postboard/internal/cursor"
	"postboard/internal/events"
	"postboard/internal/metrics"
	"postboard/internal/models"
	"postboard/internal/repository"
	"postboard/internal/validation"
)

type PostService struct {
	base
}

func NewPostService(d Deps) *PostService {
	return &PostService{base: newBase(d, "posts")}
}

func (s *PostService) Create(ctx context.Context, actor Actor, in dto.CreatePostReq) (*dto.PostResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	now := s.now()
	p := &models.Post{
		ID:        uuid.NewString(),
		UserID:    actor.UserID,
		Image:     in.Image,
		Caption:   in.Caption,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Posts.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	metrics.PostsCreated.Inc()
	s.publish(ctx, events.Event{Type: events.PostCreated, ActorID: actor.UserID, TargetID: p.ID, PostID: p.ID})
	return s.decorate(ctx, actor, *p)
}

func (s *PostService) Get(ctx context.Context, actor Actor, id string) (*dto.PostResponse, error) {
	p, err := s.store.Posts.Get(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}
	return s.decorate(ctx, actor, *p)
}

// List returns posts newest first.
func (s *PostService) List(ctx context.Context, actor Actor, limit int, after string) (*dto.Page[dto.PostResponse], error) {
	page, limit, err := s.page(limit, after)
	if err != nil {
		return nil, err
	}
	items, err := s.store.Posts.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	out := &dto.Page[dto.PostResponse]{Items: make([]dto.PostResponse, 0, len(items))}
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		next := cursor.Encode(last.CreatedAt, last.ID)
		out.NextCursor = &next
		out.HasMore = true
	}
	for _, p := range items {
		resp, err := s.decorate(ctx, actor, p)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, *resp)
	}
	return out, nil
}

// Authorize reports whether actor may modify post id.
func (s *PostService) Authorize(ctx context.Context, actor Actor, id string) error {
	p, err := s.store.Posts.Get(ctx, id)
	if err != nil {
		return notFoundAs(err, ErrPostNotFound)
	}
	if !actor.Owns(p.UserID) {
		return ErrForbidden
	}
	return nil
}

// Update replaces image and caption. Ownership is checked before the payload,
// so a non-owner gets ErrForbidden even for an invalid body.
func (s *PostService) Update(ctx context.Context, actor Actor, id string, in dto.UpdatePostReq) (*dto.PostResponse, error) {
	p, err := s.store.Posts.Get(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}
	if !actor.Owns(p.UserID) {
		return nil, ErrForbidden
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	p.Image = in.Image
	p.Caption = in.Caption
	p.UpdatedAt = s.now()
	if err := s.store.Posts.Update(ctx, p); err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}

	s.publish(ctx, events.Event{Type: events.PostUpdated, ActorID: actor.UserID, TargetID: p.ID, PostID: p.ID})
	return s.decorate(ctx, actor, *p)
}

// Delete removes the post with its comments and every like on either.
func (s *PostService) Delete(ctx context.Context, actor Actor, id string) error {
	p, err := s.store.Posts.Get(ctx, id)
	if err != nil {
		return notFoundAs(err, ErrPostNotFound)
	}
	if !actor.Owns(p.UserID) {
		return ErrForbidden
	}

	var commentIDs []string
	err = s.store.InTx(ctx, func(tx *repository.Store) error {
		ids, err := tx.Comments.IDsByPost(ctx, id)
		if err != nil {
			return fmt.Errorf("load comments: %w", err)
		}
		commentIDs = ids
		if err := tx.Likes.DeleteByTargets(ctx, models.TargetComment, ids); err != nil {
			return fmt.Errorf("delete comment likes: %w", err)
		}
		if err := tx.Comments.DeleteMany(ctx, ids); err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		if err := tx.Likes.DeleteByTargets(ctx, models.TargetPost, []string{id}); err != nil {
			return fmt.Errorf("delete post likes: %w", err)
		}
		return notFoundAs(tx.Posts.Delete(ctx, id), ErrPostNotFound)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Post deleted", "post", id, "comments", len(commentIDs))
	s.publish(ctx, events.Event{Type: events.PostDeleted, ActorID: actor.UserID, TargetID: id, PostID: id})
	return nil
}

func (s *PostService) decorate(ctx context.Context, actor Actor, p models.Post) (*dto.PostResponse, error) {
	target := models.LikeTarget{Kind: models.TargetPost, ID: p.ID}

	likes, err := s.store.Likes.Count(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("count post likes: %w", err)
	}
	comments, err := s.store.Comments.CountByPost(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}
	liked := false
	if actor.UserID != "" {
		if liked, err = s.store.Likes.IsLiked(ctx, actor.UserID, target); err != nil {
			return nil, err
		}
	}

	return &dto.PostResponse{
		ID:            p.ID,
		User:          p.UserID,
		Image:         p.Image,
		Caption:       p.Caption,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		LikesCount:    likes,
		CommentsCount: comments,
		IsLiked:       liked,
	}, nil
}
