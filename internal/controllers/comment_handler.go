package controllers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"postboard/dto"
	"postboard/internal/services"
)

type CommentHandler struct {
	Comments *services.CommentService
	Logger   *slog.Logger
	Timeout  time.Duration
}

// List godoc
// @Summary      List comments of a post
// @Description  Flat and oldest first by default, each item carries its parent id. tree=true returns the nested thread.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id      path   string  true   "Post ID"
// @Param        limit   query  int     false  "Max items per page"
// @Param        cursor  query  string  false  "Opaque next-page cursor"
// @Param        tree    query  bool    false  "Return nested thread"
// @Success      200  {object}  dto.Page[dto.CommentResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id}/comments/ [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	if c.QueryBool("tree") {
		tree, err := h.Comments.Tree(ctx, actorFrom(c), c.Params("id"))
		if err != nil {
			return respond(c, h.Logger, err)
		}
		return c.JSON(tree)
	}

	page, err := h.Comments.List(ctx, actorFrom(c), c.Params("id"), c.QueryInt("limit"), c.Query("cursor"))
	if err != nil {
		return respond(c, h.Logger, err)
	}
	return c.JSON(page)
}

// Create godoc
// @Summary      Create a comment
// @Description  Top-level when parent is omitted, a reply otherwise. The parent must belong to the same post.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "Post ID"
// @Param        body  body  dto.CreateCommentReq  true  "Comment payload"
// @Success      201  {object}  dto.CommentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id}/comments/ [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateCommentReq
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body", err.Error())
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	com, err := h.Comments.Create(ctx, actorFrom(c), c.Params("id"), body)
	if err != nil {
		return respond(c, h.Logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(com)
}

// Replies godoc
// @Summary      List direct replies of a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Comment ID"
// @Success      200  {array}   dto.CommentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /comments/{id}/replies/ [get]
func (h *CommentHandler) Replies(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	replies, err := h.Comments.Replies(ctx, actorFrom(c), c.Params("id"))
	if err != nil {
		return respond(c, h.Logger, err)
	}
	return c.JSON(replies)
}

// Delete godoc
// @Summary      Delete a comment
// @Description  Owner only. Removes every reply below it.
// @Tags         comments
// @Security     BearerAuth
// @Param        id   path  string  true  "Comment ID"
// @Success      204  {string}  string  "no content"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /comments/{id}/ [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	if err := h.Comments.Delete(ctx, actorFrom(c), c.Params("id")); err != nil {
		return respond(c, h.Logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
