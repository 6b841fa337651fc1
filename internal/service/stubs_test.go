package service

import (
	"context"

	"codegenesis/internal/models"
	"codegenesis/internal/repository"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	updateFn        func(context.Context, *models.User) error
	countsFn        func(context.Context, uint) (int64, int64, int64, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Counts(ctx context.Context, userID uint) (int64, int64, int64, error) {
	return s.countsFn(ctx, userID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, _ uint) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		countsFn:        func(_ context.Context, _ uint) (int64, int64, int64, error) { return 0, 0, 0, nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn     func(context.Context, *models.Post, []string) error
	getByIDFn    func(context.Context, uint, uint) (*models.Post, error)
	getDetailsFn func(context.Context, uint, uint) (*models.Post, error)
	peekByIDFn   func(context.Context, uint) (*models.Post, error)
	listFn       func(context.Context, repository.PostFilters, int, int, uint) ([]*models.Post, error)
	updateFn     func(context.Context, *models.Post, []string, bool) error
	deleteFn     func(context.Context, uint) error
	likeFn       func(context.Context, uint, uint) error
	unlikeFn     func(context.Context, uint, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post, tagNames []string) error {
	return s.createFn(ctx, post, tagNames)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *postRepoStub) GetDetails(ctx context.Context, id, viewerID uint) (*models.Post, error) {
	return s.getDetailsFn(ctx, id, viewerID)
}
func (s *postRepoStub) PeekByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.peekByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, filters repository.PostFilters, limit, offset int, viewerID uint) ([]*models.Post, error) {
	return s.listFn(ctx, filters, limit, offset, viewerID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post, tagNames []string, replaceTags bool) error {
	return s.updateFn(ctx, post, tagNames, replaceTags)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post, _ []string) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		getDetailsFn: func(_ context.Context, id, _ uint) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		peekByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		listFn: func(_ context.Context, _ repository.PostFilters, _, _ int, _ uint) ([]*models.Post, error) {
			return nil, nil
		},
		updateFn: func(_ context.Context, _ *models.Post, _ []string, _ bool) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
		likeFn:   func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn: func(_ context.Context, _, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn       func(context.Context, *models.Comment) error
	getByIDFn      func(context.Context, uint) (*models.Comment, error)
	listTopLevelFn func(context.Context, uint) ([]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListTopLevel(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listTopLevelFn(ctx, postID)
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	createFn func(context.Context, *models.Follow) error
	deleteFn func(context.Context, uint, uint) (bool, error)
	existsFn func(context.Context, uint, uint) (bool, error)
}

func (s *followRepoStub) Create(ctx context.Context, follow *models.Follow) error {
	return s.createFn(ctx, follow)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.deleteFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followingID)
}

// tagRepoStub is a stub for repository.TagRepository.
type tagRepoStub struct {
	createFn       func(context.Context, *models.Tag) error
	listFn         func(context.Context) ([]*models.Tag, error)
	countFn        func(context.Context) (int64, error)
	seedDefaultsFn func(context.Context) error
}

func (s *tagRepoStub) Create(ctx context.Context, tag *models.Tag) error {
	return s.createFn(ctx, tag)
}
func (s *tagRepoStub) List(ctx context.Context) ([]*models.Tag, error) {
	return s.listFn(ctx)
}
func (s *tagRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}
func (s *tagRepoStub) SeedDefaults(ctx context.Context) error {
	return s.seedDefaultsFn(ctx)
}

// notificationRepoStub is a stub for repository.NotificationRepository.
type notificationRepoStub struct {
	created      []*models.Notification
	listRecentFn func(context.Context, uint, int) ([]*models.Notification, error)
	markReadFn   func(context.Context, uint, uint) (*models.Notification, error)
}

func (s *notificationRepoStub) Create(_ context.Context, n *models.Notification) error {
	s.created = append(s.created, n)
	return nil
}
func (s *notificationRepoStub) ListRecent(ctx context.Context, userID uint, limit int) ([]*models.Notification, error) {
	if s.listRecentFn != nil {
		return s.listRecentFn(ctx, userID, limit)
	}
	return nil, nil
}
func (s *notificationRepoStub) MarkRead(ctx context.Context, userID, id uint) (*models.Notification, error) {
	if s.markReadFn != nil {
		return s.markReadFn(ctx, userID, id)
	}
	return nil, nil
}
