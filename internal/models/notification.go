package models

import (
	"time"
)

// Notification event types.
const (
	NotificationTypeLike    = "like"
	NotificationTypeComment = "comment"
	NotificationTypeFollow  = "follow"
	NotificationTypeMention = "mention"
)

// Notification is one entry in a user's append-only event log. Entries are
// never updated after creation except for flipping IsRead, and never deleted.
type Notification struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	Type          string    `gorm:"type:varchar(20);not null" json:"type"`
	Title         string    `gorm:"not null" json:"title"`
	Message       string    `gorm:"type:text" json:"message"`
	IsRead        bool      `gorm:"default:false" json:"is_read"`
	RelatedPostID *uint     `json:"related_post_id,omitempty"`
	RelatedUserID *uint     `json:"related_user_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
