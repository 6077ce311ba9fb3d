package dto

import "time"

type CreatePostReq struct {
	Image   string  `json:"image"   form:"image"   validate:"required,max=255"`
	Caption *string `json:"caption" form:"caption" validate:"omitempty,max=2200"`
}

// UpdatePostReq replaces image and caption, like a full PUT.
type UpdatePostReq struct {
	Image   string  `json:"image"   form:"image"   validate:"required,max=255"`
	Caption *string `json:"caption" form:"caption" validate:"omitempty,max=2200"`
}

type PostResponse struct {
	ID            string    `json:"id"`
	User          string    `json:"user"`
	Image         string    `json:"image"`
	Caption       *string   `json:"caption"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	LikesCount    int64     `json:"likes_count"`
	CommentsCount int64     `json:"comments_count"`
	IsLiked       bool      `json:"is_liked"`
}
