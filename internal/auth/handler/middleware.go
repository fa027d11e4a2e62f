package handler

import (
	"github.com/PrincyBhingradiya/auth-posts-api/internal/auth/domain"
	"github.com/PrincyBhingradiya/auth-posts-api/internal/auth/service"
	autherror "github.com/PrincyBhingradiya/auth-posts-api/internal/errors"
	"github.com/PrincyBhingradiya/auth-posts-api/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

// AuthRequired validates the bearer token carried verbatim in the
// Authorization header (no scheme prefix), resolves the user and rejects
// blacklisted tokens. The resolved user is stored in locals with the
// password hash cleared.
func AuthRequired(tokens service.TokenGenerator, users domain.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("Authorization")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": autherror.ErrNoToken.Error(),
			})
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": autherror.ErrInvalidToken.Error(),
			})
		}

		user, err := users.GetByID(c.Context(), claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": autherror.ErrUserNotFound.Error(),
			})
		}

		blacklisted, err := users.IsTokenBlacklisted(c.Context(), user.ID, token)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		if blacklisted {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": autherror.ErrTokenBlacklisted.Error(),
			})
		}

		user.PasswordHash = ""
		c.Locals(constant.ContextUserKey, user)
		c.Locals(constant.ContextTokenKey, token)

		return c.Next()
	}
}
