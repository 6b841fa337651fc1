package service

import (
	"context"

	"codegenesis/internal/models"
	"codegenesis/internal/observability"
	"codegenesis/internal/repository"
)

type FollowService struct {
	followRepo    repository.FollowRepository
	userRepo      repository.UserRepository
	notifications *NotificationService
}

func NewFollowService(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
	notifications *NotificationService,
) *FollowService {
	return &FollowService{
		followRepo:    followRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// Follow makes follower follow the user named by targetUsername.
func (s *FollowService) Follow(ctx context.Context, follower *models.User, targetUsername string) error {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}
	if target == nil {
		return models.NewNotFoundError("User", targetUsername)
	}
	if target.ID == follower.ID {
		return models.NewValidationError("Cannot follow yourself")
	}

	follow := &models.Follow{FollowerID: follower.ID, FollowingID: target.ID}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return err
	}
	observability.EngagementEvents.WithLabelValues("follow").Inc()

	if s.notifications != nil {
		s.notifications.EmitFollow(ctx, target.ID, follower)
	}
	return nil
}

// Unfollow removes the follow edge. Unfollowing someone the user never
// followed reports a validation error.
func (s *FollowService) Unfollow(ctx context.Context, follower *models.User, targetUsername string) error {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}
	if target == nil {
		return models.NewNotFoundError("User", targetUsername)
	}

	existed, err := s.followRepo.Delete(ctx, follower.ID, target.ID)
	if err != nil {
		return err
	}
	if !existed {
		return models.NewValidationError("Not following this user")
	}
	observability.EngagementEvents.WithLabelValues("unfollow").Inc()
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, followingID)
}
