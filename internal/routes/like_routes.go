package routes

import (
	"github.com/gofiber/fiber/v2"

	"postboard/internal/controllers"
)

func LikeRoutes(app *fiber.App, d Deps) {
	h := &controllers.LikeHandler{Likes: d.Likes, Logger: d.Logger, Timeout: d.Timeout}

	app.Post("/posts/:id/like", h.TogglePost)
	app.Post("/comments/:id/like", h.ToggleComment)
}
