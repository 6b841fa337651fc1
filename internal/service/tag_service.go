package service

import (
	"context"
	"log/slog"

	"codegenesis/internal/models"
	"codegenesis/internal/repository"
)

type TagService struct {
	tagRepo repository.TagRepository
}

type CreateTagInput struct {
	User        *models.User
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// ListTags returns all tags with per-tag post counts, seeding the default
// set on first use. Failures degrade to an empty list so the endpoint never
// errors out.
func (s *TagService) ListTags(ctx context.Context) []*models.Tag {
	count, err := s.tagRepo.Count(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to count tags", "err", err)
		return []*models.Tag{}
	}
	if count == 0 {
		if err := s.tagRepo.SeedDefaults(ctx); err != nil {
			slog.WarnContext(ctx, "failed to seed default tags", "err", err)
			return []*models.Tag{}
		}
	}
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to list tags", "err", err)
		return []*models.Tag{}
	}
	if tags == nil {
		tags = []*models.Tag{}
	}
	return tags
}

// CreateTag adds a tag. Restricted to admins and moderators.
func (s *TagService) CreateTag(ctx context.Context, in CreateTagInput) (*models.Tag, error) {
	if !in.User.HasAnyRole(models.RoleAdmin, models.RoleModerator) {
		return nil, models.NewForbiddenError("Not enough permissions")
	}
	if in.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}

	tag := &models.Tag{
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
	}
	if tag.Color == "" {
		tag.Color = models.DefaultTagColor
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}
