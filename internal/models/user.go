// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Roles a user account can hold. Moderators share tag-management rights
// with admins but have no other elevated privileges.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

// User represents a registered account in the CodeGenesis application.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"uniqueIndex;not null" json:"username"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	FullName   string    `json:"full_name"`
	Bio        string    `gorm:"type:text" json:"bio"`
	AvatarURL  string    `json:"avatar_url"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	IsVerified bool      `gorm:"default:false" json:"is_verified"`
	Role       string    `gorm:"type:varchar(20);default:'user'" json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Derived counts, filled from aggregate queries at read time.
	FollowersCount int64 `gorm:"-" json:"followers_count"`
	FollowingCount int64 `gorm:"-" json:"following_count"`
	PostsCount     int64 `gorm:"-" json:"posts_count"`
}

// HasAnyRole reports whether the user holds one of the given roles.
func (u *User) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
