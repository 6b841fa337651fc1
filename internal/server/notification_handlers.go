package server

import (
	"codegenesis/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications handles GET /notifications. Returns the 50 most recent
// entries, newest first.
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	notifications, err := s.notificationService.ListRecent(c.UserContext(), s.currentUser(c).ID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if notifications == nil {
		notifications = []*models.Notification{}
	}
	return c.JSON(notifications)
}

// MarkNotificationRead handles PUT /notifications/:id/read
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	notification, markErr := s.notificationService.MarkRead(c.UserContext(), s.currentUser(c).ID, id)
	if markErr != nil {
		return models.RespondWithError(c, markErr)
	}
	return c.JSON(notification)
}
