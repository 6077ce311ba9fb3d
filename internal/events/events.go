// Package events publishes domain events (likes, comments, posts) to NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	PostCreated    = "post.created"
	PostUpdated    = "post.updated"
	PostDeleted    = "post.deleted"
	CommentCreated = "comment.created"
	CommentDeleted = "comment.deleted"
	LikeToggled    = "like.toggled"
)

type Event struct {
	Type     string    `json:"type"`
	ActorID  string    `json:"actor_id"`
	TargetID string    `json:"target_id"`
	PostID   string    `json:"post_id,omitempty"`
	Liked    *bool     `json:"liked,omitempty"`
	At       time.Time `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Noop drops every event. It is used when NATS_URL is empty.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }

// NATS publishes events as JSON on "<prefix>.<event type>".
type NATS struct {
	Conn   *nats.Conn
	Prefix string
	Logger *slog.Logger
}

func Connect(url, prefix string, logger *slog.Logger) (*NATS, error) {
	nc, err := nats.Connect(url, nats.Name("postboard"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	return &NATS{Conn: nc, Prefix: prefix, Logger: logger.With("component", "events")}, nil
}

func (p *NATS) Subject(e Event) string {
	if p.Prefix == "" {
		return e.Type
	}
	return p.Prefix + "." + e.Type
}

func (p *NATS) Publish(_ context.Context, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if err := p.Conn.Publish(p.Subject(e), data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", e.Type, err)
	}
	p.Logger.Debug("Event published", "subject", p.Subject(e))
	return nil
}

func (p *NATS) Close() {
	p.Conn.Close()
}
