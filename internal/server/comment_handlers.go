package server

import (
	"codegenesis/internal/models"
	"codegenesis/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /posts/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, listErr := s.commentService.ListComments(c.UserContext(), postID)
	if listErr != nil {
		return models.RespondWithError(c, listErr)
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return c.JSON(comments)
}

// CreateComment handles POST /posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.CreateCommentInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}
	req.User = s.currentUser(c)
	req.PostID = postID

	comment, createErr := s.commentService.CreateComment(c.UserContext(), req)
	if createErr != nil {
		return models.RespondWithError(c, createErr)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}
