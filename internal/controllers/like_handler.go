package controllers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"postboard/internal/models"
	"postboard/internal/services"
)

type LikeHandler struct {
	Likes   *services.LikeService
	Logger  *slog.Logger
	Timeout time.Duration
}

// TogglePost godoc
// @Summary      Toggle like on a post
// @Description  Likes the post, or removes the like when the user already liked it
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Post ID"
// @Success      200  {object}  dto.LikeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id}/like/ [post]
func (h *LikeHandler) TogglePost(c *fiber.Ctx) error {
	return h.toggle(c, models.TargetPost)
}

// ToggleComment godoc
// @Summary      Toggle like on a comment
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Comment ID"
// @Success      200  {object}  dto.LikeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /comments/{id}/like/ [post]
func (h *LikeHandler) ToggleComment(c *fiber.Ctx) error {
	return h.toggle(c, models.TargetComment)
}

func (h *LikeHandler) toggle(c *fiber.Ctx, kind models.TargetKind) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	res, err := h.Likes.ToggleLike(ctx, actorFrom(c), models.LikeTarget{Kind: kind, ID: c.Params("id")})
	if err != nil {
		return respond(c, h.Logger, err)
	}
	return c.JSON(res)
}
