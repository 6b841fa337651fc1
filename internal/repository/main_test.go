package repository

import (
	"fmt"
	"testing"

	"codegenesis/internal/database"
	"codegenesis/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh in-memory sqlite database migrated with the full
// model set. Each test gets its own database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, database.Migrate(db), "migrate sqlite")
	return db
}

var testUserSeq int

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	testUserSeq++
	user := &models.User{
		Username: fmt.Sprintf("user%d", testUserSeq),
		Email:    fmt.Sprintf("user%d@example.com", testUserSeq),
		Password: "hashed",
		FullName: fmt.Sprintf("User %d", testUserSeq),
		IsActive: true,
		Role:     models.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, author *models.User) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:       "Test Post",
		Content:     "Test content",
		UserID:      author.ID,
		IsPublished: true,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
