package service

import (
	"context"
	"errors"
	"testing"

	"codegenesis/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagService_ListTagsSeedsWhenEmpty(t *testing.T) {
	seeded := false
	repo := &tagRepoStub{
		countFn: func(_ context.Context) (int64, error) { return 0, nil },
		seedDefaultsFn: func(_ context.Context) error {
			seeded = true
			return nil
		},
		listFn: func(_ context.Context) ([]*models.Tag, error) {
			return []*models.Tag{{Name: "Technology"}}, nil
		},
	}
	svc := NewTagService(repo)

	tags := svc.ListTags(context.Background())
	assert.True(t, seeded)
	require.Len(t, tags, 1)
}

func TestTagService_ListTagsSkipsSeedWhenPopulated(t *testing.T) {
	repo := &tagRepoStub{
		countFn: func(_ context.Context) (int64, error) { return 5, nil },
		seedDefaultsFn: func(_ context.Context) error {
			t.Fatal("seed should not run when tags exist")
			return nil
		},
		listFn: func(_ context.Context) ([]*models.Tag, error) {
			return []*models.Tag{{Name: "a"}, {Name: "b"}}, nil
		},
	}
	tags := NewTagService(repo).ListTags(context.Background())
	assert.Len(t, tags, 2)
}

func TestTagService_ListTagsDegradesToEmpty(t *testing.T) {
	boom := errors.New("db down")

	t.Run("count fails", func(t *testing.T) {
		repo := &tagRepoStub{
			countFn: func(_ context.Context) (int64, error) { return 0, boom },
		}
		tags := NewTagService(repo).ListTags(context.Background())
		require.NotNil(t, tags)
		assert.Empty(t, tags)
	})

	t.Run("list fails", func(t *testing.T) {
		repo := &tagRepoStub{
			countFn: func(_ context.Context) (int64, error) { return 5, nil },
			listFn:  func(_ context.Context) ([]*models.Tag, error) { return nil, boom },
		}
		tags := NewTagService(repo).ListTags(context.Background())
		require.NotNil(t, tags)
		assert.Empty(t, tags)
	})
}

func TestTagService_CreateTagRoleGate(t *testing.T) {
	ctx := context.Background()
	var created *models.Tag
	repo := &tagRepoStub{
		createFn: func(_ context.Context, tag *models.Tag) error {
			created = tag
			return nil
		},
	}
	svc := NewTagService(repo)

	_, err := svc.CreateTag(ctx, CreateTagInput{
		User: &models.User{ID: 1, Role: models.RoleUser}, Name: "Go",
	})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", appErrCode(t, err))
	assert.Nil(t, created)

	for _, role := range []string{models.RoleAdmin, models.RoleModerator} {
		tag, err := svc.CreateTag(ctx, CreateTagInput{
			User: &models.User{ID: 1, Role: role}, Name: "Go",
		})
		require.NoError(t, err, "role %s", role)
		assert.Equal(t, "Go", tag.Name)
	}
}

func TestTagService_CreateTagDefaults(t *testing.T) {
	repo := &tagRepoStub{
		createFn: func(_ context.Context, _ *models.Tag) error { return nil },
	}
	svc := NewTagService(repo)
	admin := &models.User{ID: 1, Role: models.RoleAdmin}

	_, err := svc.CreateTag(context.Background(), CreateTagInput{User: admin, Name: ""})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", appErrCode(t, err))

	tag, err := svc.CreateTag(context.Background(), CreateTagInput{User: admin, Name: "Plain"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTagColor, tag.Color)

	tag, err = svc.CreateTag(context.Background(), CreateTagInput{
		User: admin, Name: "Tinted", Color: "#123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "#123456", tag.Color)
}
