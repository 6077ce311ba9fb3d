package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"postboard/dto"
	"postboard/internal/testutil"
)

type fixture struct {
	deps     Deps
	events   *testutil.Recorder
	posts    *PostService
	comments *CommentService
	likes    *LikeService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rec := &testutil.Recorder{}
	d := Deps{
		Store:  testutil.NewStore(t),
		Events: rec,
		Logger: testutil.Logger(),
		Now:    testutil.NewClock().Now,
		Paging: Paging{Default: 2, Max: 5},
	}
	return &fixture{
		deps:     d,
		events:   rec,
		posts:    NewPostService(d),
		comments: NewCommentService(d),
		likes:    NewLikeService(d),
	}
}

func newActor() Actor {
	return Actor{UserID: uuid.NewString()}
}

func (f *fixture) post(t *testing.T, owner Actor) *dto.PostResponse {
	t.Helper()
	p, err := f.posts.Create(context.Background(), owner, dto.CreatePostReq{Image: "posts/cat.png"})
	require.NoError(t, err)
	return p
}

func (f *fixture) comment(t *testing.T, actor Actor, postID string, parent *string) *dto.CommentResponse {
	t.Helper()
	c, err := f.comments.Create(context.Background(), actor, postID, dto.CreateCommentReq{Comment: "nice", Parent: parent})
	require.NoError(t, err)
	return c
}
