package routes

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"postboard/internal/controllers"
	"postboard/internal/metrics"
	"postboard/internal/middleware"
	"postboard/internal/services"
)

type Deps struct {
	Posts    *services.PostService
	Comments *services.CommentService
	Likes    *services.LikeService
	Auth     *services.AuthService

	JWTSecret string
	MediaRoot string
	Timeout   time.Duration
	Logger    *slog.Logger
}

// NewApp returns a Fiber app with the shared error body, panic recovery,
// CORS and request logging installed.
func NewApp(logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "postboard",
		ErrorHandler: controllers.ErrorHandler(logger),
		BodyLimit:    10 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	return app
}

func Setup(app *fiber.App, d Deps) {
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", metrics.Handler())
	app.Static("/media", d.MediaRoot)

	auth := &controllers.AuthHandler{Auth: d.Auth, Logger: d.Logger, Timeout: d.Timeout}
	app.Post("/auth/register", auth.Register)
	app.Post("/auth/login", auth.Login)

	for _, prefix := range []string{"/posts", "/comments"} {
		app.Use(prefix, middleware.JWTUidOnly(d.JWTSecret), middleware.RequireAuth())
	}

	SetupRoutesPost(app, d)
	CommentRoutes(app, d)
	LikeRoutes(app, d)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	})
}
