package models

import "time"

type Post struct {
	ID        string    `json:"id"         bson:"_id"        gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user"       bson:"user_id"    gorm:"type:varchar(36);not null;index"`
	Image     string    `json:"image"      bson:"image"      gorm:"not null"`
	Caption   *string   `json:"caption"    bson:"caption"    gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" gorm:"not null;index:idx_posts_created,priority:1"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at" gorm:"not null"`
}

func (Post) TableName() string { return "posts" }
