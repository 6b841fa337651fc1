// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// DefaultTagColor is the hex color assigned to tags created without one.
const DefaultTagColor = "#3B82F6"

// Tag labels posts; the name is globally unique and attachment is many-to-many.
type Tag struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Color       string `gorm:"default:'#3B82F6'" json:"color"`
	// PostsCount is not persisted; computed at query time
	PostsCount int       `gorm:"->" json:"posts_count"`
	CreatedAt  time.Time `json:"created_at"`
}
