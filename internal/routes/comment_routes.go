package routes

import (
	"github.com/gofiber/fiber/v2"

	"postboard/internal/controllers"
)

func CommentRoutes(app *fiber.App, d Deps) {
	h := &controllers.CommentHandler{Comments: d.Comments, Logger: d.Logger, Timeout: d.Timeout}

	app.Get("/posts/:id/comments", h.List)
	app.Post("/posts/:id/comments", h.Create)
	app.Get("/comments/:id/replies", h.Replies)
	app.Delete("/comments/:id", h.Delete)
}
