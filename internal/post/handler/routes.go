package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the post endpoints; every route requires auth.
func RegisterRoutes(app *fiber.App, h *PostHandler, authRequired fiber.Handler) {
	posts := app.Group("/posts", authRequired)
	posts.Post("/", h.Create)
	posts.Get("/", h.List)
	posts.Put("/:id", h.Update)
	posts.Delete("/:id", h.Delete)
	posts.Get("/location/filter", h.FilterByLocation)
	posts.Get("/stats/count", h.Stats)
}
