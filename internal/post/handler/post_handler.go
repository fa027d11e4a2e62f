package handler

import (
	"strconv"

	authdomain "github.com/PrincyBhingradiya/auth-posts-api/internal/auth/domain"
	autherror "github.com/PrincyBhingradiya/auth-posts-api/internal/errors"
	"github.com/PrincyBhingradiya/auth-posts-api/internal/post/dto"
	"github.com/PrincyBhingradiya/auth-posts-api/internal/post/service"
	"github.com/PrincyBhingradiya/auth-posts-api/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// currentUserID reads the user resolved by the auth middleware.
func currentUserID(c *fiber.Ctx) string {
	if user, ok := c.Locals(constant.ContextUserKey).(*authdomain.User); ok {
		return user.ID
	}
	return ""
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	var input dto.CreatePostInput
	if err := c.BodyParser(&input); err != nil {
		// Also rejects non-numeric latitude/longitude values.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}

	post, err := h.postService.Create(c.Context(), currentUserID(c), input)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "post created successfully",
		"post":    post,
	})
}

func (h *PostHandler) List(c *fiber.Ctx) error {
	posts, err := h.postService.List(c.Context(), currentUserID(c))
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   len(posts),
		"posts":   posts,
	})
}

func (h *PostHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdatePostInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}

	post, err := h.postService.Update(c.Context(), currentUserID(c), c.Params("id"), input)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "post updated",
		"post":    post,
	})
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	if err := h.postService.Delete(c.Context(), currentUserID(c), c.Params("id")); err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "post deleted",
	})
}

func (h *PostHandler) FilterByLocation(c *fiber.Ctx) error {
	latStr := c.Query("latitude")
	lngStr := c.Query("longitude")
	if latStr == "" || lngStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": autherror.ErrLocationRequired.Error(),
		})
	}

	latitude, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "latitude must be a number",
		})
	}
	longitude, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "longitude must be a number",
		})
	}

	posts, err := h.postService.FilterByLocation(c.Context(), currentUserID(c), latitude, longitude)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   len(posts),
		"posts":   posts,
	})
}

func (h *PostHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.postService.Stats(c.Context(), currentUserID(c))
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"totalPosts":    stats.TotalPosts,
		"activeCount":   stats.ActiveCount,
		"inactiveCount": stats.InactiveCount,
	})
}
