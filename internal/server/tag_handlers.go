package server

import (
	"codegenesis/internal/models"
	"codegenesis/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetTags handles GET /tags. Always returns a JSON array, empty on failure.
func (s *Server) GetTags(c *fiber.Ctx) error {
	return c.JSON(s.tagService.ListTags(c.UserContext()))
}

// CreateTag handles POST /tags. Admins and moderators only.
func (s *Server) CreateTag(c *fiber.Ctx) error {
	var req service.CreateTagInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}
	req.User = s.currentUser(c)

	tag, err := s.tagService.CreateTag(c.UserContext(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}
