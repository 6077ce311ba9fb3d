package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	p := &NATS{Prefix: "postboard"}
	assert.Equal(t, "postboard.like.toggled", p.Subject(Event{Type: LikeToggled}))

	p.Prefix = ""
	assert.Equal(t, "comment.created", p.Subject(Event{Type: CommentCreated}))
}

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop{}.Publish(context.Background(), Event{Type: PostCreated}))
}
