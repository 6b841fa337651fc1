package server

import (
	"codegenesis/internal/models"
	"codegenesis/internal/repository"
	"codegenesis/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /posts. Supports search, tag and author filters plus
// limit/offset pagination. Reading the list counts a view on every returned
// post.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c, 100)

	posts, err := s.postService.ListPosts(c.UserContext(), service.ListPostsInput{
		Filters: repository.PostFilters{
			Search:         c.Query("search"),
			TagName:        c.Query("tag"),
			AuthorUsername: c.Query("author"),
		},
		Limit:    p.Limit,
		Offset:   p.Offset,
		ViewerID: s.optionalUserID(c),
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return c.JSON(posts)
}

// GetPost handles GET /posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, getErr := s.postService.GetPost(c.UserContext(), id, s.optionalUserID(c))
	if getErr != nil {
		return models.RespondWithError(c, getErr)
	}
	return c.JSON(post)
}

// CreatePost handles POST /posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req service.CreatePostInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}
	req.User = s.currentUser(c)

	post, err := s.postService.CreatePost(c.UserContext(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.UpdatePostInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}
	req.User = s.currentUser(c)
	req.PostID = id

	post, updateErr := s.postService.UpdatePost(c.UserContext(), req)
	if updateErr != nil {
		return models.RespondWithError(c, updateErr)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if deleteErr := s.postService.DeletePost(c.UserContext(), s.currentUser(c), id); deleteErr != nil {
		return models.RespondWithError(c, deleteErr)
	}
	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}

// LikePost handles POST /posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if likeErr := s.postService.LikePost(c.UserContext(), s.currentUser(c), id); likeErr != nil {
		return models.RespondWithError(c, likeErr)
	}
	return c.JSON(fiber.Map{"message": "Post liked successfully"})
}

// UnlikePost handles DELETE /posts/:id/like
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if unlikeErr := s.postService.UnlikePost(c.UserContext(), s.currentUser(c), id); unlikeErr != nil {
		return models.RespondWithError(c, unlikeErr)
	}
	return c.JSON(fiber.Map{"message": "Post unliked successfully"})
}
