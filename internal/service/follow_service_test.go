package service

import (
	"context"
	"testing"

	"codegenesis/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func followTestUserRepo(target *models.User) *userRepoStub {
	repo := noopUserRepo()
	repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		if target != nil && username == target.Username {
			return target, nil
		}
		return nil, nil
	}
	return repo
}

func TestFollowService_Follow(t *testing.T) {
	ctx := context.Background()
	alice := &models.User{ID: 1, Username: "alice"}
	bob := &models.User{ID: 2, Username: "bob"}

	var createdEdge *models.Follow
	followRepo := &followRepoStub{
		createFn: func(_ context.Context, f *models.Follow) error {
			createdEdge = f
			return nil
		},
	}
	notifRepo := &notificationRepoStub{}
	svc := NewFollowService(followRepo, followTestUserRepo(bob), NewNotificationService(notifRepo))

	require.NoError(t, svc.Follow(ctx, alice, "bob"))
	require.NotNil(t, createdEdge)
	assert.Equal(t, alice.ID, createdEdge.FollowerID)
	assert.Equal(t, bob.ID, createdEdge.FollowingID)

	// the target gets a follow notification
	require.Len(t, notifRepo.created, 1)
	assert.Equal(t, bob.ID, notifRepo.created[0].UserID)
	assert.Equal(t, models.NotificationTypeFollow, notifRepo.created[0].Type)
	require.NotNil(t, notifRepo.created[0].RelatedUserID)
	assert.Equal(t, alice.ID, *notifRepo.created[0].RelatedUserID)
}

func TestFollowService_FollowSelf(t *testing.T) {
	alice := &models.User{ID: 1, Username: "alice"}
	svc := NewFollowService(&followRepoStub{}, followTestUserRepo(alice), nil)

	err := svc.Follow(context.Background(), alice, "alice")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", appErrCode(t, err))
}

func TestFollowService_FollowUnknownTarget(t *testing.T) {
	alice := &models.User{ID: 1, Username: "alice"}
	svc := NewFollowService(&followRepoStub{}, followTestUserRepo(nil), nil)

	err := svc.Follow(context.Background(), alice, "ghost")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrCode(t, err))
}

func TestFollowService_Unfollow(t *testing.T) {
	ctx := context.Background()
	alice := &models.User{ID: 1, Username: "alice"}
	bob := &models.User{ID: 2, Username: "bob"}

	existed := true
	followRepo := &followRepoStub{
		deleteFn: func(_ context.Context, _, _ uint) (bool, error) {
			return existed, nil
		},
	}
	svc := NewFollowService(followRepo, followTestUserRepo(bob), nil)

	require.NoError(t, svc.Unfollow(ctx, alice, "bob"))

	// unfollowing a user never followed is a validation error
	existed = false
	err := svc.Unfollow(ctx, alice, "bob")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", appErrCode(t, err))
}
