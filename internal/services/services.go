// Package services holds the post, comment, like and auth use cases. Every
// operation takes the acting user explicitly; the HTTP layer resolves it from
// the token once.
package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"postboard/internal/cursor"
	"postboard/internal/events"
	"postboard/internal/repository"
)

var (
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrParentNotFound     = errors.New("parent comment not found")
	ErrParentPostMismatch = errors.New("parent comment belongs to another post")
	ErrForbidden          = errors.New("you do not own this resource")
	ErrInvalidTarget      = errors.New("invalid like target")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

// Actor is the authenticated user performing an operation.
type Actor struct {
	UserID string
}

func (a Actor) Owns(ownerID string) bool {
	return a.UserID != "" && a.UserID == ownerID
}

type Paging struct {
	Default int
	Max     int
}

// Deps is shared by every service constructor.
type Deps struct {
	Store  *repository.Store
	Events events.Publisher
	Logger *slog.Logger
	Now    func() time.Time
	Paging Paging
}

type base struct {
	store  *repository.Store
	events events.Publisher
	logger *slog.Logger
	clock  func() time.Time
	paging Paging
}

func newBase(d Deps, component string) base {
	b := base{
		store:  d.Store,
		events: d.Events,
		logger: d.Logger,
		clock:  d.Now,
		paging: d.Paging,
	}
	if b.events == nil {
		b.events = events.Noop{}
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	b.logger = b.logger.With("component", component)
	if b.clock == nil {
		b.clock = time.Now
	}
	if b.paging.Default <= 0 {
		b.paging.Default = 20
	}
	if b.paging.Max < b.paging.Default {
		b.paging.Max = b.paging.Default
	}
	return b
}

// now is UTC with millisecond precision so cursors round-trip.
func (b base) now() time.Time {
	return b.clock().UTC().Truncate(time.Millisecond)
}

// publish never fails the request; a lost event is only logged.
func (b base) publish(ctx context.Context, e events.Event) {
	e.At = b.now()
	if err := b.events.Publish(ctx, e); err != nil {
		b.logger.Warn("Failed to publish event", "type", e.Type, "error", err)
	}
}

// page turns a limit and an opaque cursor into a repository page that
// fetches one extra row to detect whether more items follow.
func (b base) page(limit int, after string) (repository.Page, int, error) {
	if limit <= 0 {
		limit = b.paging.Default
	}
	if limit > b.paging.Max {
		limit = b.paging.Max
	}
	c, err := cursor.Decode(after)
	if err != nil {
		return repository.Page{}, 0, err
	}
	return repository.Page{Limit: limit + 1, After: c}, limit, nil
}

func notFoundAs(err, sentinel error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return sentinel
	}
	return err
}
