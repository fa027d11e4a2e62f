package handler

import (
	"fmt"
	"time"

	"github.com/PrincyBhingradiya/auth-posts-api/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RegisterRoutes mounts the auth endpoints. Login and forgot-password sit
// behind fixed-window per-IP limiters; logout requires a valid token.
func RegisterRoutes(app *fiber.App, h *AuthHandler, authRequired fiber.Handler, cfg *config.Config) {
	loginLimiter := limiter.New(limiter.Config{
		Max:        cfg.LoginMaxAttempts,
		Expiration: time.Duration(cfg.LoginWindowMinutes) * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": fmt.Sprintf("too many login attempts, try again after %d minutes", cfg.LoginWindowMinutes),
			})
		},
	})

	forgotPasswordLimiter := limiter.New(limiter.Config{
		Max:        cfg.ResetMaxAttempts,
		Expiration: time.Duration(cfg.ResetWindowMinutes) * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "too many password reset attempts, try again later",
			})
		},
	})

	auth := app.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", loginLimiter, h.Login)
	auth.Post("/logout", authRequired, h.Logout)
	auth.Post("/forgot-password", forgotPasswordLimiter, h.ForgotPassword)
	auth.Post("/reset-password/:token", h.ResetPassword)
}
