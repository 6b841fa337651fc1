package service

import (
	"context"

	"codegenesis/internal/models"
	"codegenesis/internal/observability"
	"codegenesis/internal/repository"
)

type CommentService struct {
	commentRepo   repository.CommentRepository
	postRepo      repository.PostRepository
	notifications *NotificationService
}

type CreateCommentInput struct {
	User     *models.User
	PostID   uint
	Content  string `json:"content"`
	ParentID *uint  `json:"parent_id"`
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	notifications *NotificationService,
) *CommentService {
	return &CommentService{
		commentRepo:   commentRepo,
		postRepo:      postRepo,
		notifications: notifications,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	post, err := s.postRepo.PeekByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if in.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		// A reply must stay inside its parent's thread.
		if parent.PostID != in.PostID {
			return nil, models.NewValidationError("Parent comment belongs to a different post")
		}
	}

	comment := &models.Comment{
		Content:  in.Content,
		UserID:   in.User.ID,
		PostID:   in.PostID,
		ParentID: in.ParentID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	observability.CommentsCreated.Inc()

	if s.notifications != nil {
		s.notifications.EmitComment(ctx, post, in.User)
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns a post's top-level comments with reply counts.
// Replies themselves are fetched through their parent, not listed here.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.PeekByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListTopLevel(ctx, postID)
}
