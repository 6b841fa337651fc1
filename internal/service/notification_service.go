package service

import (
	"context"
	"fmt"
	"log/slog"

	"codegenesis/internal/models"
	"codegenesis/internal/observability"
	"codegenesis/internal/repository"
)

// recentNotificationLimit bounds how many entries the feed returns.
const recentNotificationLimit = 50

type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

func (s *NotificationService) ListRecent(ctx context.Context, userID uint) ([]*models.Notification, error) {
	return s.notificationRepo.ListRecent(ctx, userID, recentNotificationLimit)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint) (*models.Notification, error) {
	return s.notificationRepo.MarkRead(ctx, userID, notificationID)
}

// Emit records a notification for recipientID about an action performed by
// actorID. Failures are logged and swallowed so the triggering mutation is
// never rolled back over a missed notification. Users are not notified about
// their own actions.
func (s *NotificationService) Emit(ctx context.Context, recipientID, actorID uint, notifType, title, message string, relatedPostID *uint) {
	if recipientID == actorID {
		return
	}
	n := &models.Notification{
		UserID:        recipientID,
		Type:          notifType,
		Title:         title,
		Message:       message,
		RelatedPostID: relatedPostID,
		RelatedUserID: &actorID,
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		slog.WarnContext(ctx, "failed to create notification",
			"recipient_id", recipientID, "type", notifType, "err", err)
		return
	}
	observability.NotificationsEmitted.WithLabelValues(notifType).Inc()
}

func (s *NotificationService) EmitFollow(ctx context.Context, recipientID uint, follower *models.User) {
	s.Emit(ctx, recipientID, follower.ID,
		models.NotificationTypeFollow,
		"New follower",
		fmt.Sprintf("%s started following you", follower.Username),
		nil)
}

func (s *NotificationService) EmitLike(ctx context.Context, post *models.Post, liker *models.User) {
	s.Emit(ctx, post.UserID, liker.ID,
		models.NotificationTypeLike,
		"New like",
		fmt.Sprintf("%s liked your post \"%s\"", liker.Username, post.Title),
		&post.ID)
}

func (s *NotificationService) EmitComment(ctx context.Context, post *models.Post, commenter *models.User) {
	s.Emit(ctx, post.UserID, commenter.ID,
		models.NotificationTypeComment,
		"New comment",
		fmt.Sprintf("%s commented on your post \"%s\"", commenter.Username, post.Title),
		&post.ID)
}
