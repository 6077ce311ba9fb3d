package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"postboard/dto"
	"postboard/internal/cursor"
	"postboard/internal/events"
	"postboard/internal/metrics"
	"postboard/internal/models"
	"postboard/internal/repository"
	"postboard/internal/validation"
)

type CommentService struct {
	base
}

func NewCommentService(d Deps) *CommentService {
	return &CommentService{base: newBase(d, "comments")}
}

// Create attaches a comment to postID, optionally as a reply to in.Parent.
// Nothing is written unless the post and the parent check out.
func (s *CommentService) Create(ctx context.Context, actor Actor, postID string, in dto.CreateCommentReq) (*dto.CommentResponse, error) {
	// An empty parent means a top-level comment.
	if in.Parent != nil && strings.TrimSpace(*in.Parent) == "" {
		in.Parent = nil
	}
	if _, err := s.store.Posts.Get(ctx, postID); err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	if in.Parent != nil {
		parent, err := s.store.Comments.Get(ctx, *in.Parent)
		if err != nil {
			return nil, notFoundAs(err, ErrParentNotFound)
		}
		if parent.PostID != postID {
			return nil, ErrParentPostMismatch
		}
	}

	now := s.now()
	c := &models.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		UserID:    actor.UserID,
		ParentID:  in.Parent,
		Comment:   in.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	kind := "top_level"
	if !c.IsTopLevel() {
		kind = "reply"
	}
	metrics.CommentsCreated.WithLabelValues(kind).Inc()
	s.publish(ctx, events.Event{Type: events.CommentCreated, ActorID: actor.UserID, TargetID: c.ID, PostID: postID})

	resp := commentResponse(*c)
	return &resp, nil
}

// List returns the comments of a post oldest first, flat, each with its parent id.
func (s *CommentService) List(ctx context.Context, actor Actor, postID string, limit int, after string) (*dto.Page[dto.CommentResponse], error) {
	if _, err := s.store.Posts.Get(ctx, postID); err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}
	page, limit, err := s.page(limit, after)
	if err != nil {
		return nil, err
	}

	items, err := s.store.Comments.ListByPost(ctx, postID, page)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	out := &dto.Page[dto.CommentResponse]{Items: []dto.CommentResponse{}}
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		next := cursor.Encode(last.CreatedAt, last.ID)
		out.NextCursor = &next
		out.HasMore = true
	}
	out.Items, err = s.decorate(ctx, actor, items)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Tree returns every comment of a post nested under its parent.
func (s *CommentService) Tree(ctx context.Context, actor Actor, postID string) (*dto.CommentTreeResp, error) {
	if _, err := s.store.Posts.Get(ctx, postID); err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}
	items, err := s.store.Comments.AllByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("load thread: %w", err)
	}
	flat, err := s.decorate(ctx, actor, items)
	if err != nil {
		return nil, err
	}
	return &dto.CommentTreeResp{Post: postID, Count: len(flat), Comments: BuildThread(flat)}, nil
}

// Replies returns the direct children of commentID.
func (s *CommentService) Replies(ctx context.Context, actor Actor, commentID string) ([]dto.CommentResponse, error) {
	if _, err := s.store.Comments.Get(ctx, commentID); err != nil {
		return nil, notFoundAs(err, ErrCommentNotFound)
	}
	items, err := s.store.Comments.ListReplies(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	return s.decorate(ctx, actor, items)
}

// Delete removes commentID, every reply below it and all of their likes.
func (s *CommentService) Delete(ctx context.Context, actor Actor, commentID string) error {
	c, err := s.store.Comments.Get(ctx, commentID)
	if err != nil {
		return notFoundAs(err, ErrCommentNotFound)
	}
	if !actor.Owns(c.UserID) {
		return ErrForbidden
	}

	ids, err := s.subtree(ctx, commentID)
	if err != nil {
		return err
	}
	err = s.store.InTx(ctx, func(tx *repository.Store) error {
		if err := tx.Likes.DeleteByTargets(ctx, models.TargetComment, ids); err != nil {
			return fmt.Errorf("delete comment likes: %w", err)
		}
		if err := tx.Comments.DeleteMany(ctx, ids); err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Comment deleted", "comment", commentID, "removed", len(ids))
	s.publish(ctx, events.Event{Type: events.CommentDeleted, ActorID: actor.UserID, TargetID: commentID, PostID: c.PostID})
	return nil
}

// subtree walks replies breadth first and returns root plus all descendants.
func (s *CommentService) subtree(ctx context.Context, root string) ([]string, error) {
	seen := map[string]bool{root: true}
	all := []string{root}
	frontier := []string{root}
	for len(frontier) > 0 {
		children, err := s.store.Comments.ReplyIDs(ctx, frontier)
		if err != nil {
			return nil, fmt.Errorf("walk replies: %w", err)
		}
		frontier = frontier[:0]
		for _, id := range children {
			if seen[id] {
				continue
			}
			seen[id] = true
			all = append(all, id)
			frontier = append(frontier, id)
		}
	}
	return all, nil
}

func (s *CommentService) decorate(ctx context.Context, actor Actor, items []models.Comment) ([]dto.CommentResponse, error) {
	out := make([]dto.CommentResponse, 0, len(items))
	for _, c := range items {
		resp := commentResponse(c)
		target := models.LikeTarget{Kind: models.TargetComment, ID: c.ID}

		count, err := s.store.Likes.Count(ctx, target)
		if err != nil {
			return nil, fmt.Errorf("count comment likes: %w", err)
		}
		resp.LikesCount = count

		if actor.UserID != "" {
			liked, err := s.store.Likes.IsLiked(ctx, actor.UserID, target)
			if err != nil {
				return nil, err
			}
			resp.IsLiked = liked
		}
		out = append(out, resp)
	}
	return out, nil
}

func commentResponse(c models.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        c.ID,
		Post:      c.PostID,
		User:      c.UserID,
		Parent:    c.ParentID,
		Comment:   c.Comment,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
