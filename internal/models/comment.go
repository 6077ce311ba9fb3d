package models

import "time"

// Comment is a node of an adjacency list: ParentID points at the comment it
// replies to, nil for top-level comments. Depth is unbounded.
type Comment struct {
	ID        string    `json:"id"         bson:"_id"        gorm:"primaryKey;type:varchar(36)"`
	PostID    string    `json:"post"       bson:"post_id"    gorm:"type:varchar(36);not null;index:idx_comments_post_created,priority:1"`
	UserID    string    `json:"user"       bson:"user_id"    gorm:"type:varchar(36);not null;index"`
	ParentID  *string   `json:"parent"     bson:"parent_id"  gorm:"type:varchar(36);index"`
	Comment   string    `json:"comment"    bson:"comment"    gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" gorm:"not null;index:idx_comments_post_created,priority:2"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at" gorm:"not null"`
}

func (Comment) TableName() string { return "post_comments" }

func (c Comment) IsTopLevel() bool { return c.ParentID == nil }
