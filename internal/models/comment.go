// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Comment represents a comment on a post. A comment may reply to another
// comment on the same post via ParentID; reply trees are one level deep.
type Comment struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Content  string   `gorm:"type:text;not null" json:"content"`
	UserID   uint     `gorm:"not null;index" json:"author_id"`
	User     User     `gorm:"foreignKey:UserID" json:"author"`
	PostID   uint     `gorm:"not null;index" json:"post_id"`
	ParentID *uint    `gorm:"index" json:"parent_id"`
	Parent   *Comment `gorm:"foreignKey:ParentID" json:"-"`
	// RepliesCount is not persisted; computed at query time
	RepliesCount int       `gorm:"->" json:"replies_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
