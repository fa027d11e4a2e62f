package handler

import (
	"github.com/PrincyBhingradiya/auth-posts-api/internal/auth/domain"
	"github.com/PrincyBhingradiya/auth-posts-api/internal/auth/dto"
	"github.com/PrincyBhingradiya/auth-posts-api/internal/auth/service"
	autherror "github.com/PrincyBhingradiya/auth-posts-api/internal/errors"
	"github.com/PrincyBhingradiya/auth-posts-api/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "user registered successfully",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}

	user, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": user,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	user, _ := c.Locals(constant.ContextUserKey).(*domain.User)
	token, _ := c.Locals(constant.ContextTokenKey).(string)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": autherror.ErrNoToken.Error(),
		})
	}

	lastLogoutAt, err := h.userService.Logout(c.Context(), user.ID, token)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "logged out successfully",
		"lastLogoutAt": lastLogoutAt,
	})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}

	if err := h.userService.ForgotPassword(c.Context(), input); err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	// Same confirmation whether or not the email is registered.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "password reset link sent to your email",
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}

	if err := h.userService.ResetPassword(c.Context(), c.Params("token"), input); err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "password reset successful",
	})
}
