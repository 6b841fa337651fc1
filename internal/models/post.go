// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a published or draft post authored by a user.
type Post struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null;index" json:"title"`
	Content     string `gorm:"type:text;not null" json:"content"`
	UserID      uint   `gorm:"not null;index" json:"author_id"`
	User        User   `gorm:"foreignKey:UserID" json:"author"`
	IsPublished bool   `gorm:"default:true" json:"is_published"`
	IsFeatured  bool   `gorm:"default:false" json:"is_featured"`
	// ViewCount only ever increases; every read-fetch of the post adds one.
	ViewCount int   `gorm:"default:0" json:"view_count"`
	Tags      []Tag `gorm:"many2many:post_tags" json:"tags"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked     bool      `gorm:"->" json:"is_liked_by_user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
