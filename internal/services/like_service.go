package services

import (
	"context"
	"fmt"

	"postboard/dto"
	"postboard/internal/events"
	"postboard/internal/metrics"
	"postboard/internal/models"
)

type LikeService struct {
	base
}

func NewLikeService(d Deps) *LikeService {
	return &LikeService{base: newBase(d, "likes")}
}

// ToggleLike flips the actor's like on target. The existence check and the
// toggle are separate reads, but the toggle itself is atomic per (user, target).
func (s *LikeService) ToggleLike(ctx context.Context, actor Actor, target models.LikeTarget) (*dto.LikeResponse, error) {
	if !target.Kind.Valid() || target.ID == "" {
		return nil, ErrInvalidTarget
	}

	postID, err := s.resolve(ctx, target)
	if err != nil {
		return nil, err
	}

	liked, err := s.store.Likes.Toggle(ctx, actor.UserID, target)
	if err != nil {
		return nil, fmt.Errorf("toggle %s: %w", target, err)
	}

	count, err := s.store.Likes.Count(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("count likes of %s: %w", target, err)
	}

	result := "unliked"
	if liked {
		result = "liked"
	}
	metrics.LikeToggles.WithLabelValues(string(target.Kind), result).Inc()
	s.logger.Debug("Like toggled", "target", target.String(), "user", actor.UserID, "liked", liked)
	s.publish(ctx, events.Event{
		Type:     events.LikeToggled,
		ActorID:  actor.UserID,
		TargetID: target.ID,
		PostID:   postID,
		Liked:    &liked,
	})

	return &dto.LikeResponse{
		Status:     true,
		Liked:      liked,
		Message:    toggleMessage(target.Kind, liked),
		LikesCount: count,
	}, nil
}

// resolve checks the target exists and returns the post it belongs to.
func (s *LikeService) resolve(ctx context.Context, target models.LikeTarget) (string, error) {
	switch target.Kind {
	case models.TargetPost:
		if _, err := s.store.Posts.Get(ctx, target.ID); err != nil {
			return "", notFoundAs(err, ErrPostNotFound)
		}
		return target.ID, nil
	default:
		c, err := s.store.Comments.Get(ctx, target.ID)
		if err != nil {
			return "", notFoundAs(err, ErrCommentNotFound)
		}
		return c.PostID, nil
	}
}

func toggleMessage(kind models.TargetKind, liked bool) string {
	switch {
	case liked:
		return "Successfully liked"
	case kind == models.TargetComment:
		return "Successfully unliked from comment"
	default:
		return "Successfully unliked"
	}
}
