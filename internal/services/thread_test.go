package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/dto"
)

func TestBuildThread(t *testing.T) {
	ref := func(s string) *string { return &s }
	flat := []dto.CommentResponse{
		{ID: "a"},
		{ID: "b"},
		{ID: "a1", Parent: ref("a")},
		{ID: "a2", Parent: ref("a")},
		{ID: "a1x", Parent: ref("a1")},
		{ID: "orphan", Parent: ref("gone")},
	}

	roots := BuildThread(flat)
	require.Len(t, roots, 3)
	assert.Equal(t, "a", roots[0].ID)
	assert.Equal(t, "b", roots[1].ID)
	assert.Equal(t, "orphan", roots[2].ID)

	require.Len(t, roots[0].Replies, 2)
	assert.Equal(t, "a1", roots[0].Replies[0].ID)
	assert.Equal(t, "a2", roots[0].Replies[1].ID)
	require.Len(t, roots[0].Replies[0].Replies, 1)
	assert.Equal(t, "a1x", roots[0].Replies[0].Replies[0].ID)
	assert.Empty(t, roots[1].Replies)
}

func TestBuildThreadEmpty(t *testing.T) {
	assert.Empty(t, BuildThread(nil))
}
