package server

import (
	"codegenesis/internal/models"
	"codegenesis/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetSelf(c.UserContext(), s.currentUser(c).ID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req service.UpdateProfileInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}
	req.UserID = s.currentUser(c).ID

	user, err := s.userService.UpdateProfile(c.UserContext(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(user)
}

// GetUserProfile handles GET /users/:username
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	user, err := s.userService.GetProfile(c.UserContext(), username)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(user)
}

// FollowUser handles POST /users/:username/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	username := c.Params("username")

	if err := s.followService.Follow(c.UserContext(), s.currentUser(c), username); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Successfully followed user"})
}

// UnfollowUser handles DELETE /users/:username/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	username := c.Params("username")

	if err := s.followService.Unfollow(c.UserContext(), s.currentUser(c), username); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Successfully unfollowed user"})
}
