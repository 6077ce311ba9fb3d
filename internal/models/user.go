package models

import "time"

type User struct {
	ID           string    `json:"id"         bson:"_id"           gorm:"primaryKey;type:varchar(36)"`
	Username     string    `json:"username"   bson:"username"      gorm:"size:150;not null;uniqueIndex"`
	PasswordHash string    `json:"-"          bson:"password_hash" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"    gorm:"not null"`
}

func (User) TableName() string { return "users" }
