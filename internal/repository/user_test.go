package repository

import (
	"context"
	"errors"
	"testing"

	"codegenesis/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &models.User{
		Username: "alice", Email: "alice@example.com",
		Password: "hash", IsActive: true, Role: models.RoleUser,
	}
	require.NoError(t, repo.Create(ctx, first))

	// same username, different email
	err := repo.Create(ctx, &models.User{
		Username: "alice", Email: "other@example.com",
		Password: "hash", IsActive: true, Role: models.RoleUser,
	})
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT", appErr.Code)

	// same email, different username
	err = repo.Create(ctx, &models.User{
		Username: "alice2", Email: "alice@example.com",
		Password: "hash", IsActive: true, Role: models.RoleUser,
	})
	require.Error(t, err)
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db)

	found, err := repo.GetByUsername(ctx, user.Username)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	// absence is (nil, nil), not an error
	missing, err := repo.GetByUsername(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 12345)
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserRepository_Counts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db)
	bob := createTestUser(t, db)
	carol := createTestUser(t, db)

	// bob and carol follow alice; alice follows bob
	require.NoError(t, db.Create(&models.Follow{FollowerID: bob.ID, FollowingID: alice.ID}).Error)
	require.NoError(t, db.Create(&models.Follow{FollowerID: carol.ID, FollowingID: alice.ID}).Error)
	require.NoError(t, db.Create(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}).Error)

	createTestPost(t, db, alice)
	createTestPost(t, db, alice)

	followers, following, posts, err := repo.Counts(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), followers)
	assert.Equal(t, int64(1), following)
	assert.Equal(t, int64(2), posts)

	followers, following, posts, err = repo.Counts(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), followers)
	assert.Equal(t, int64(1), following)
	assert.Equal(t, int64(0), posts)
}

func TestUserRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db)
	user.Bio = "updated bio"
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated bio", found.Bio)
}
