package controllers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"postboard/dto"
	"postboard/internal/services"
)

type AuthHandler struct {
	Auth    *services.AuthService
	Logger  *slog.Logger
	Timeout time.Duration
}

// Register godoc
// @Summary      Register a local account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterReq  true  "Credentials"
// @Success      201  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body dto.RegisterReq
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body", err.Error())
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	user, err := h.Auth.Register(ctx, body)
	if err != nil {
		return respond(c, h.Logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Exchange credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginReq  true  "Credentials"
// @Success      200  {object}  dto.TokenResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginReq
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body", err.Error())
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	tok, err := h.Auth.Login(ctx, body)
	if err != nil {
		return respond(c, h.Logger, err)
	}
	return c.JSON(tok)
}
