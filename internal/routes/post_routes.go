package routes

import (
	"github.com/gofiber/fiber/v2"

	"postboard/internal/controllers"
)

func SetupRoutesPost(app *fiber.App, d Deps) {
	h := &controllers.PostHandler{
		Posts:   d.Posts,
		Media:   controllers.MediaStore{Root: d.MediaRoot},
		Logger:  d.Logger,
		Timeout: d.Timeout,
	}

	posts := app.Group("/posts")
	posts.Get("/", h.List)
	posts.Post("/", h.Create)
	posts.Get("/:id", h.Get)
	posts.Put("/:id", h.Update)
	posts.Delete("/:id", h.Delete)
}
