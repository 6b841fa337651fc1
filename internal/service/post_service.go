package service

import (
	"context"

	"codegenesis/internal/models"
	"codegenesis/internal/observability"
	"codegenesis/internal/repository"
)

type PostService struct {
	postRepo      repository.PostRepository
	notifications *NotificationService
}

type CreatePostInput struct {
	User        *models.User
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	IsPublished *bool    `json:"is_published"`
}

type UpdatePostInput struct {
	User        *models.User
	PostID      uint
	Title       *string   `json:"title"`
	Content     *string   `json:"content"`
	Tags        *[]string `json:"tags"`
	IsPublished *bool     `json:"is_published"`
}

type ListPostsInput struct {
	Filters  repository.PostFilters
	Limit    int
	Offset   int
	ViewerID uint
}

const maxPostTitleLen = 300

func NewPostService(postRepo repository.PostRepository, notifications *NotificationService) *PostService {
	return &PostService{postRepo: postRepo, notifications: notifications}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxPostTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	post := &models.Post{
		Title:       in.Title,
		Content:     in.Content,
		UserID:      in.User.ID,
		IsPublished: true,
	}
	if in.IsPublished != nil {
		post.IsPublished = *in.IsPublished
	}

	if err := s.postRepo.Create(ctx, post, in.Tags); err != nil {
		return nil, err
	}
	observability.PostsCreated.Inc()
	return s.postRepo.GetDetails(ctx, post.ID, in.User.ID)
}

// ListPosts returns published posts newest-first. Listing counts a view
// against every returned post, same as reading one directly.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	limit := in.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}
	return s.postRepo.List(ctx, in.Filters, limit, offset, in.ViewerID)
}

func (s *PostService) GetPost(ctx context.Context, id uint, viewerID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, viewerID)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.PeekByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.User.ID {
		return nil, models.NewForbiddenError("Not enough permissions")
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, models.NewValidationError("Title is required")
		}
		if len(*in.Title) > maxPostTitleLen {
			return nil, models.NewValidationError("Title too long (max 300 characters)")
		}
		post.Title = *in.Title
	}
	if in.Content != nil {
		if *in.Content == "" {
			return nil, models.NewValidationError("Content is required")
		}
		post.Content = *in.Content
	}
	if in.IsPublished != nil {
		post.IsPublished = *in.IsPublished
	}

	var tagNames []string
	replaceTags := in.Tags != nil
	if replaceTags {
		tagNames = *in.Tags
	}
	if err := s.postRepo.Update(ctx, post, tagNames, replaceTags); err != nil {
		return nil, err
	}
	return s.postRepo.GetDetails(ctx, post.ID, in.User.ID)
}

// DeletePost removes a post. Only the author or an admin may delete.
func (s *PostService) DeletePost(ctx context.Context, user *models.User, postID uint) error {
	post, err := s.postRepo.PeekByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != user.ID && !user.HasAnyRole(models.RoleAdmin) {
		return models.NewForbiddenError("Not enough permissions")
	}
	return s.postRepo.Delete(ctx, postID)
}

func (s *PostService) LikePost(ctx context.Context, user *models.User, postID uint) error {
	post, err := s.postRepo.PeekByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := s.postRepo.Like(ctx, user.ID, postID); err != nil {
		return err
	}
	observability.EngagementEvents.WithLabelValues("like").Inc()
	if s.notifications != nil {
		s.notifications.EmitLike(ctx, post, user)
	}
	return nil
}

func (s *PostService) UnlikePost(ctx context.Context, user *models.User, postID uint) error {
	if _, err := s.postRepo.PeekByID(ctx, postID); err != nil {
		return err
	}
	if err := s.postRepo.Unlike(ctx, user.ID, postID); err != nil {
		return err
	}
	observability.EngagementEvents.WithLabelValues("unlike").Inc()
	return nil
}
