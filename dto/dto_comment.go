package dto

import "time"

type CreateCommentReq struct {
	Comment string  `json:"comment" validate:"required,max=2000"`
	Parent  *string `json:"parent"  validate:"omitempty,uuid4"`
}

type CommentResponse struct {
	ID         string    `json:"id"`
	Post       string    `json:"post"`
	User       string    `json:"user"`
	Parent     *string   `json:"parent"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	LikesCount int64     `json:"likes_count"`
	IsLiked    bool      `json:"is_liked"`
}

// CommentNode is one comment of a thread with its direct replies.
type CommentNode struct {
	CommentResponse
	Replies []*CommentNode `json:"replies"`
}

type CommentTreeResp struct {
	Post     string         `json:"post"`
	Count    int            `json:"count"`
	Comments []*CommentNode `json:"comments"`
}
