package models

import (
	"fmt"
	"time"
)

// TargetKind selects which of the two like tables a toggle operates on.
type TargetKind string

const (
	TargetPost    TargetKind = "post"
	TargetComment TargetKind = "comment"
)

func (k TargetKind) Valid() bool {
	return k == TargetPost || k == TargetComment
}

type LikeTarget struct {
	Kind TargetKind
	ID   string
}

func (t LikeTarget) String() string {
	return fmt.Sprintf("%s:%s", t.Kind, t.ID)
}

type PostLike struct {
	ID        string    `json:"id"         bson:"_id"        gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user"       bson:"user_id"    gorm:"type:varchar(36);not null;uniqueIndex:idx_post_likes_user_post,priority:1"`
	PostID    string    `json:"post"       bson:"post_id"    gorm:"type:varchar(36);not null;uniqueIndex:idx_post_likes_user_post,priority:2;index"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" gorm:"not null"`
}

func (PostLike) TableName() string { return "post_likes" }

type CommentLike struct {
	ID        string    `json:"id"         bson:"_id"        gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user"       bson:"user_id"    gorm:"type:varchar(36);not null;uniqueIndex:idx_comment_likes_user_comment,priority:1"`
	CommentID string    `json:"comment"    bson:"comment_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_comment_likes_user_comment,priority:2;index"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" gorm:"not null"`
}

func (CommentLike) TableName() string { return "comment_likes" }
